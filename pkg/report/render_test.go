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

package report_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/webinsights/market-research-cli/internal/environment"
	"github.com/webinsights/market-research-cli/pkg/features"
	"github.com/webinsights/market-research-cli/pkg/report"
)

func testReport() report.Report {
	return report.Report{
		Company: "Acme Corp",
		Domain:  "acme.example.com",
		Summary: "Mid-sized industrial supplier.",
		TechStack: []report.TechStackEntry{
			{Name: "nginx", Category: "web server", Confidence: 0.95},
			{Name: "React", Category: "frontend"},
		},
		SEOHealth: &report.SEOHealth{
			Score:  72,
			Issues: []string{"missing meta descriptions on 14 pages"},
		},
		BusinessMetadata: &report.BusinessMetadata{
			Industry:       "Manufacturing",
			EmployeeRange:  "51-200",
			FundingStage:   "Series B",
			SocialProfiles: []string{"https://linkedin.example.com/acme"},
		},
	}
}

func TestRenderWithV2UIDisabledHidesV2Sections(t *testing.T) {
	r := report.NewRenderer(features.Features{MarketResearchV2UI: false})

	out := r.Render(testReport())

	assert.Contains(t, out, "Market Research Report: Acme Corp")
	assert.Contains(t, out, "Domain: acme.example.com")
	assert.Contains(t, out, "Summary")
	assert.NotContains(t, out, "Tech Stack")
	assert.NotContains(t, out, "SEO Health")
	assert.NotContains(t, out, "Enhanced Business Metadata")
}

func TestRenderWithV2UIEnabledShowsV2Sections(t *testing.T) {
	r := report.NewRenderer(features.Features{MarketResearchV2UI: true})

	out := r.Render(testReport())

	assert.Contains(t, out, "Tech Stack")
	assert.Contains(t, out, "nginx (web server) [confidence: 95%]")
	assert.Contains(t, out, "SEO Health")
	assert.Contains(t, out, "Score: 72/100")
	assert.Contains(t, out, "Enhanced Business Metadata")
	assert.Contains(t, out, "Industry: Manufacturing")
	assert.Contains(t, out, "Social: https://linkedin.example.com/acme")
}

func TestRenderIsDeterministic(t *testing.T) {
	r := report.NewRenderer(features.Features{MarketResearchV2UI: true})

	first := r.Render(testReport())
	second := r.Render(testReport())

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Report ID: ")
}

func TestRenderSkipsEmptyV2Sections(t *testing.T) {
	r := report.NewRenderer(features.Features{MarketResearchV2UI: true})

	out := r.Render(report.Report{Company: "Acme Corp", Domain: "acme.example.com"})

	assert.NotContains(t, out, "Tech Stack")
	assert.NotContains(t, out, "SEO Health")
	assert.NotContains(t, out, "Enhanced Business Metadata")
}

func TestRenderCapsTechStackSection(t *testing.T) {
	t.Setenv(environment.MaxSectionItemsEnvKey, "3")

	rep := report.Report{Company: "Acme Corp", Domain: "acme.example.com"}
	for i := 0; i < 10; i++ {
		rep.TechStack = append(rep.TechStack, report.TechStackEntry{Name: fmt.Sprintf("tech-%d", i)})
	}

	r := report.NewRenderer(features.Features{MarketResearchV2UI: true})
	out := r.Render(rep)

	assert.Contains(t, out, "tech-2")
	assert.NotContains(t, out, "tech-3")
	assert.Contains(t, out, "... and 7 more")
}
