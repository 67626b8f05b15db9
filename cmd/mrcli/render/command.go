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

package render

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/webinsights/market-research-cli/cmd/mrcli/cmdutils"
	"github.com/webinsights/market-research-cli/internal/environment"
	"github.com/webinsights/market-research-cli/internal/log"
	"github.com/webinsights/market-research-cli/pkg/features"
	"github.com/webinsights/market-research-cli/pkg/report"
)

func GetRenderCommand(fs afero.Fs) *cobra.Command {
	var outputPath string
	var save bool

	cmd := &cobra.Command{
		Use:     "render <report.yaml>",
		Short:   "Renders a market research report as plain text",
		Example: "mrcli render acme.yaml -o acme-report.txt",
		Args:    cobra.ExactArgs(1),
		PreRun:  cmdutils.SilenceUsageCommand(),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := report.Load(fs, args[0])
			if err != nil {
				return err
			}

			// feature toggles are resolved once per run, the renderer never
			// re-reads the environment
			feats := features.Load()
			out := report.NewRenderer(feats).Render(rep)

			if save && outputPath == "" {
				outputPath = deriveFilename(rep.Company)
			}

			if outputPath == "" {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}

			if err := afero.WriteFile(fs, outputPath, []byte(out), 0644); err != nil {
				return fmt.Errorf("failed to write rendered report to %q: %w", outputPath, err)
			}
			log.Info("Rendered report written to %s", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the rendered report to this file instead of stdout")
	cmd.Flags().BoolVar(&save, "save", false, "Write the rendered report to a file named after the company")

	return cmd
}

const renderedReportSuffix = "-report.txt"

// deriveFilename builds a filesystem-safe output filename from a company name,
// truncated so the full name stays within the configured filename length limit.
func deriveFilename(company string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ', r == '-', r == '_', r == '.':
			return '-'
		default:
			return -1
		}
	}, strings.TrimSpace(company))

	if name == "" {
		name = "market-research"
	}

	maxLen := environment.GetEnvValueInt(environment.MaxFilenameLenKey)
	if cut := maxLen - len(renderedReportSuffix); cut > 0 && len(name) > cut {
		name = name[:cut]
	}

	return name + renderedReportSuffix
}
