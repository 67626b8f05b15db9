/*
 * @license
 * Copyright 2024 WebInsights
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package log

import (
	"context"
	"errors"
	"log/slog"
)

var _ slog.Handler = (*TeeHandler)(nil)

// TeeHandler fans records out to several handlers, e.g. console, log file and error file.
type TeeHandler struct {
	handlers []slog.Handler
}

// NewTeeHandler creates a new TeeHandler that delegates handling to the specified handlers.
func NewTeeHandler(h ...slog.Handler) *TeeHandler {
	return &TeeHandler{handlers: h}
}

// Enabled returns true if at least one delegate handler is enabled for the given log level.
func (t *TeeHandler) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range t.handlers {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

// Handle passes the record to every delegate handler enabled for its level.
func (t *TeeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range t.handlers {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

// WithAttrs returns a new TeeHandler where each delegate handler has the specified attributes.
func (t *TeeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, 0, len(t.handlers))
	for _, h := range t.handlers {
		newHandlers = append(newHandlers, h.WithAttrs(attrs))
	}
	return NewTeeHandler(newHandlers...)
}

// WithGroup returns a new TeeHandler where each delegate handler has the specified group.
func (t *TeeHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, 0, len(t.handlers))
	for _, h := range t.handlers {
		newHandlers = append(newHandlers, h.WithGroup(name))
	}
	return NewTeeHandler(newHandlers...)
}
