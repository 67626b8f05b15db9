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

// Policy defines how the raw environment value of a feature flag is mapped
// to an enabled/disabled state. The two policies are not equivalent: an
// absent variable disables an OptIn flag but leaves an OptOut flag enabled.
type Policy int

const (
	// OptIn enables a feature only when its environment variable is set to
	// exactly "true". Anything else - absent, empty, different casing or
	// other values - leaves the feature disabled.
	OptIn Policy = iota
	// OptOut keeps a feature enabled unless its environment variable is set
	// to exactly "false". Anything else - absent, empty, different casing or
	// other values - leaves the feature enabled.
	OptOut
)

// Resolve maps a raw environment value to a flag state under the policy.
// set states whether the environment variable existed at all.
// Resolve is total: every input yields a boolean, it can not fail.
func (p Policy) Resolve(value string, set bool) bool {
	if p == OptOut {
		return !set || value != "false"
	}
	return set && value == "true"
}

// Default returns the state a flag resolves to when its environment variable
// is not set.
func (p Policy) Default() bool {
	return p == OptOut
}

func (p Policy) String() string {
	if p == OptOut {
		return "opt-out"
	}
	return "opt-in"
}
