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

package featureflags

/*
 * This file groups 'temporary' flags - rollout switches for features that are hidden while they stabilize.
 * These should always be removed after release of a feature, or some stabilization period if needed.
 */

var (
	// MarketResearchV2UI controls whether the V2 report sections - Tech Stack,
	// SEO Health and Enhanced Business Metadata - are rendered.
	// Opt-in while the V2 research pipeline is rolled out; the flag flips to
	// OptOut once V2 becomes the default experience.
	// Introduced: 2024-08-12; v2.0.0
	MarketResearchV2UI = New("MRCLI_FEAT_MARKET_RESEARCH_V2_UI", OptIn)
)

// Temporary holds all rollout feature flags, keyed by their environment variable name.
var Temporary = map[string]FeatureFlag{
	MarketResearchV2UI.EnvName(): MarketResearchV2UI,
}
