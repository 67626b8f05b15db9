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

package dump

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/webinsights/market-research-cli/cmd/mrcli/cmdutils"
	"github.com/webinsights/market-research-cli/pkg/features"
)

// GetDumpCommand builds the experimental 'dump' command. It is only
// registered when the ExperimentalCommands feature flag is enabled.
func GetDumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "dump",
		Short:   "Dumps the resolved feature snapshot as YAML",
		Example: "mrcli dump",
		Hidden:  true,
		PreRun:  cmdutils.SilenceUsageCommand(),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := yaml.Marshal(features.Load())
			if err != nil {
				return fmt.Errorf("failed to marshal feature snapshot: %w", err)
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
