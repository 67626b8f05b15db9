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

import (
	"os"

	"github.com/webinsights/market-research-cli/internal/log"
)

// FeatureFlag represents a switch to turn certain features ON or OFF.
// Values are read from the environment variable defined by the feature flag
// and interpreted under its comparison Policy. When the environment variable
// does not exist the policy's default applies.
type FeatureFlag struct {
	// envName is the environment variable name
	// that is used to read the value from
	envName string
	// policy states how the environment value is compared and which
	// state applies when the variable is not set
	policy Policy
}

// New creates a new FeatureFlag
// envName is the environment variable the feature flag is loading the values from when evaluated
// policy defines the comparison semantics and the default state
func New(envName string, policy Policy) FeatureFlag {
	return FeatureFlag{
		envName: envName,
		policy:  policy,
	}
}

// Enabled evaluates the feature flag.
// Evaluation can not fail: values other than the exact literals "true" and
// "false" fall back to the policy's behavior for unrecognized input and a
// warning is logged.
func (ff FeatureFlag) Enabled() bool {
	val, set := os.LookupEnv(ff.envName)
	if set && val != "true" && val != "false" {
		log.Warn("Unsupported value %q for feature flag %q. Using %s policy default: %v", val, ff.envName, ff.policy, ff.policy.Default())
	}
	return ff.policy.Resolve(val, set)
}

// EnvName gives back the environment variable name for
// the feature flag
func (ff FeatureFlag) EnvName() string {
	return ff.envName
}

// Default returns the state the feature flag resolves to when its
// environment variable is not set
func (ff FeatureFlag) Default() bool {
	return ff.policy.Default()
}

// Value returns the current value and default value of a FeatureFlag
func (ff FeatureFlag) Value() (enabled bool, defaultVal bool) {
	return ff.Enabled(), ff.Default()
}
