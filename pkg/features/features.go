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

// Package features holds the resolved feature toggles of a single run.
// Flags are read from the environment exactly once at startup; the snapshot
// is passed by value to consumers and never changes afterwards.
package features

import (
	"github.com/webinsights/market-research-cli/internal/featureflags"
)

// Features is the immutable per-run snapshot of all feature toggles
// consumed by the report rendering layer.
type Features struct {
	// MarketResearchV2UI states whether the V2 report sections
	// (Tech Stack, SEO Health, Enhanced Business Metadata) are shown.
	MarketResearchV2UI bool `yaml:"marketResearchV2UI"`
}

// Load resolves every feature flag from the environment and returns the snapshot.
func Load() Features {
	return Features{
		MarketResearchV2UI: featureflags.MarketResearchV2UI.Enabled(),
	}
}
