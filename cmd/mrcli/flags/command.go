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

package flags

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/webinsights/market-research-cli/cmd/mrcli/cmdutils"
	"github.com/webinsights/market-research-cli/internal/featureflags"
	"github.com/webinsights/market-research-cli/internal/log"
	"github.com/webinsights/market-research-cli/internal/timeutils"
)

func GetFlagsCommand(fs afero.Fs) *cobra.Command {
	var toFile bool

	cmd := &cobra.Command{
		Use:     "flags",
		Short:   "Prints the current state of all feature flags",
		Example: "mrcli flags",
		PreRun:  cmdutils.SilenceUsageCommand(),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), featureflags.StateInfo())

			if !toFile {
				return nil
			}

			path, err := writeFeatureFlagStateFile(fs)
			if err != nil {
				return err
			}
			log.Info("Feature flag state written to %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&toFile, "file", false, "Additionally write the flag state to a file in the "+log.LogDirectory+" directory")

	return cmd
}

// writeFeatureFlagStateFile persists the flag state next to the run's log
// files so it can be attached to support requests.
func writeFeatureFlagStateFile(fs afero.Fs) (filename string, err error) {
	if err := fs.MkdirAll(log.LogDirectory, 0777); err != nil {
		return "", fmt.Errorf("unable to prepare log directory %s: %w", log.LogDirectory, err)
	}

	timeAnchor := timeutils.TimeAnchor().Format(log.LogFileTimestampPrefixFormat)
	path := filepath.Join(log.LogDirectory, timeAnchor+"-featureflag_state.log")
	if err := afero.WriteFile(fs, path, []byte(featureflags.StateInfo()), 0644); err != nil {
		return "", err
	}
	return path, nil
}
