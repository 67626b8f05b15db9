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

package runner

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/webinsights/market-research-cli/cmd/mrcli/dump"
	"github.com/webinsights/market-research-cli/cmd/mrcli/flags"
	"github.com/webinsights/market-research-cli/cmd/mrcli/render"
	"github.com/webinsights/market-research-cli/cmd/mrcli/version"
	"github.com/webinsights/market-research-cli/internal/featureflags"
	"github.com/webinsights/market-research-cli/internal/log"
)

func Run() int {
	rootCmd := BuildCli(afero.NewOsFs())

	err := rootCmd.Execute()

	if err != nil {
		log.Error("%v\n", err)
		return 1
	}

	return 0
}

func BuildCli(fs afero.Fs) *cobra.Command {
	var verbose bool

	var rootCmd = &cobra.Command{
		Use:   "mrcli <command>",
		Short: "Renders market research reports gathered by the WebInsights research pipeline.",
		Long: `Tool used to render market research reports via the cli

Examples:
  Render a research report to the console
    mrcli render acme.yaml
  Render a report including the V2 sections
    MRCLI_FEAT_MARKET_RESEARCH_V2_UI=true mrcli render acme.yaml`,

		PersistentPreRun: configureLogging(fs, &verbose),
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	// global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// commands
	rootCmd.AddCommand(render.GetRenderCommand(fs))
	rootCmd.AddCommand(flags.GetFlagsCommand(fs))
	rootCmd.AddCommand(version.GetVersionCommand())

	if featureflags.ExperimentalCommands.Enabled() {
		log.Warn("%s environment var detected!", featureflags.ExperimentalCommands.EnvName())
		log.Warn("Use experimental commands with care, they may change or disappear without notice")

		rootCmd.AddCommand(dump.GetDumpCommand())
	}

	return rootCmd
}

func configureLogging(fs afero.Fs, verbose *bool) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		log.PrepareLogging(fs, *verbose, nil, featureflags.LogToFile.Enabled(), featureflags.ColorOutput.Enabled())
	}
}
