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

package render

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webinsights/market-research-cli/internal/environment"
	"github.com/webinsights/market-research-cli/internal/featureflags"
)

const reportYaml = `company: Acme Corp
domain: acme.example.com
summary: Mid-sized industrial supplier.
techStack:
  - name: nginx
seoHealth:
  score: 72
businessMetadata:
  industry: Manufacturing
`

func runRender(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	cmd := GetRenderCommand(fs)
	out := strings.Builder{}
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderToStdoutHidesV2SectionsByDefault(t *testing.T) {
	t.Setenv(featureflags.MarketResearchV2UI.EnvName(), "false")

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "acme.yaml", []byte(reportYaml), 0644))

	out, err := runRender(t, fs, "acme.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "Market Research Report: Acme Corp")
	assert.NotContains(t, out, "Tech Stack")
	assert.NotContains(t, out, "SEO Health")
	assert.NotContains(t, out, "Enhanced Business Metadata")
}

func TestRenderToStdoutShowsV2SectionsWhenEnabled(t *testing.T) {
	t.Setenv(featureflags.MarketResearchV2UI.EnvName(), "true")

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "acme.yaml", []byte(reportYaml), 0644))

	out, err := runRender(t, fs, "acme.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "Tech Stack")
	assert.Contains(t, out, "SEO Health")
	assert.Contains(t, out, "Enhanced Business Metadata")
}

func TestRenderWritesOutputFile(t *testing.T) {
	t.Setenv(featureflags.MarketResearchV2UI.EnvName(), "true")

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "acme.yaml", []byte(reportYaml), 0644))

	_, err := runRender(t, fs, "acme.yaml", "-o", "out.txt")
	require.NoError(t, err)

	content, err := afero.ReadFile(fs, "out.txt")
	require.NoError(t, err)
	assert.Contains(t, string(content), "Market Research Report: Acme Corp")
}

func TestRenderSaveDerivesFilenameFromCompany(t *testing.T) {
	t.Setenv(featureflags.MarketResearchV2UI.EnvName(), "false")

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "acme.yaml", []byte(reportYaml), 0644))

	_, err := runRender(t, fs, "acme.yaml", "--save")
	require.NoError(t, err)

	exists, err := afero.Exists(fs, "acme-corp-report.txt")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestDeriveFilename(t *testing.T) {
	assert.Equal(t, "acme-corp-report.txt", deriveFilename("Acme Corp"))
	assert.Equal(t, "acme-inc-report.txt", deriveFilename("Acme, Inc!"))
	assert.Equal(t, "market-research-report.txt", deriveFilename("!!!"))
}

func TestDeriveFilenameRespectsLengthLimit(t *testing.T) {
	t.Setenv(environment.MaxFilenameLenKey, "20")

	name := deriveFilename("A Very Long Company Name That Exceeds The Limit")

	assert.LessOrEqual(t, len(name), 20)
	assert.True(t, strings.HasSuffix(name, "-report.txt"))
}
