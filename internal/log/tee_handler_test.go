//go:build unit

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
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeeHandlerWritesToAllDelegates(t *testing.T) {
	first := &strings.Builder{}
	second := &strings.Builder{}

	tee := NewTeeHandler(
		slog.NewTextHandler(first, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(second, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)
	logger := slog.New(tee)

	logger.Info("fan out")

	assert.Contains(t, first.String(), "fan out")
	assert.Contains(t, second.String(), "fan out")
}

func TestTeeHandlerRespectsDelegateLevels(t *testing.T) {
	infoOnly := &strings.Builder{}
	errorsOnly := &strings.Builder{}

	tee := NewTeeHandler(
		slog.NewTextHandler(infoOnly, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(errorsOnly, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	logger := slog.New(tee)

	logger.Info("just info")
	logger.Error("an error")

	assert.Contains(t, infoOnly.String(), "just info")
	assert.Contains(t, infoOnly.String(), "an error")
	assert.NotContains(t, errorsOnly.String(), "just info")
	assert.Contains(t, errorsOnly.String(), "an error")
}

func TestTeeHandlerEnabled(t *testing.T) {
	tee := NewTeeHandler(
		slog.NewTextHandler(&strings.Builder{}, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	assert.False(t, tee.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, tee.Enabled(context.Background(), slog.LevelError))
}
