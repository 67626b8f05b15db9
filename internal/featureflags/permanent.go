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
 * This file groups 'permanent' flags - features we want to be able to toggle long-term, instead of removing them after a stabilization period.
 */

var (
	// LogToFile controls whether log files are written to the .logs directory in addition to console output.
	LogToFile = New("MRCLI_LOG_FILE_ENABLED", OptOut)

	// ColorOutput controls whether console log output is colored by log level.
	// Users piping output into other tools can switch the ANSI escapes off.
	ColorOutput = New("MRCLI_FEAT_COLOR_OUTPUT", OptOut)

	// ExperimentalCommands controls whether experimental CLI commands are registered.
	// These commands carry no stability guarantees and are hidden by default.
	ExperimentalCommands = New("MRCLI_ENABLE_EXPERIMENTAL_COMMANDS", OptIn)
)

// Permanent holds all long-term feature flags, keyed by their environment variable name.
var Permanent = map[string]FeatureFlag{
	LogToFile.EnvName():            LogToFile,
	ColorOutput.EnvName():          ColorOutput,
	ExperimentalCommands.EnvName(): ExperimentalCommands,
}
