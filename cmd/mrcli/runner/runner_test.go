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

package runner_test

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webinsights/market-research-cli/cmd/mrcli/runner"
	"github.com/webinsights/market-research-cli/internal/featureflags"
)

func commandNames(t *testing.T, fs afero.Fs) []string {
	t.Helper()
	cmd := runner.BuildCli(fs)
	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	return names
}

func TestBuildCliRegistersCoreCommands(t *testing.T) {
	t.Setenv(featureflags.ExperimentalCommands.EnvName(), "false")

	names := commandNames(t, afero.NewMemMapFs())

	assert.Contains(t, names, "render")
	assert.Contains(t, names, "flags")
	assert.Contains(t, names, "version")
	assert.NotContains(t, names, "dump", "experimental commands must not be registered by default")
}

func TestExperimentalCommandsAreGatedByFeatureFlag(t *testing.T) {
	t.Setenv(featureflags.ExperimentalCommands.EnvName(), "true")

	names := commandNames(t, afero.NewMemMapFs())

	assert.Contains(t, names, "dump")
}

func TestExperimentalCommandsRequireExactOptInValue(t *testing.T) {
	// the gate is opt-in: "1" or "TRUE" must not open it
	for _, v := range []string{"1", "TRUE", ""} {
		t.Setenv(featureflags.ExperimentalCommands.EnvName(), v)
		assert.NotContains(t, commandNames(t, afero.NewMemMapFs()), "dump", "value %q must not enable experimental commands", v)
	}
}

func TestVersionCommand(t *testing.T) {
	t.Setenv(featureflags.LogToFile.EnvName(), "false")
	t.Setenv(featureflags.ExperimentalCommands.EnvName(), "false")

	cmd := runner.BuildCli(afero.NewMemMapFs())
	out := strings.Builder{}
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "mrcli version")
}

func TestRenderCommandFailsOnMissingReport(t *testing.T) {
	t.Setenv(featureflags.LogToFile.EnvName(), "false")
	t.Setenv(featureflags.ExperimentalCommands.EnvName(), "false")

	cmd := runner.BuildCli(afero.NewMemMapFs())
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})
	cmd.SetArgs([]string{"render", "missing.yaml"})

	assert.Error(t, cmd.Execute())
}
