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

package report

import (
	"fmt"
	"strings"

	"github.com/webinsights/market-research-cli/internal/environment"
	"github.com/webinsights/market-research-cli/internal/featureflags"
	"github.com/webinsights/market-research-cli/internal/idutils"
	"github.com/webinsights/market-research-cli/internal/log"
	"github.com/webinsights/market-research-cli/pkg/features"
)

const sectionSeparator = "----------------------------------------\n"

// Renderer renders reports as plain text. Which sections it renders is fixed
// by the feature snapshot it was created with.
type Renderer struct {
	features        features.Features
	maxSectionItems int
}

// NewRenderer creates a Renderer for the given feature snapshot.
func NewRenderer(f features.Features) Renderer {
	return Renderer{
		features:        f,
		maxSectionItems: environment.GetEnvValueIntLog(environment.MaxSectionItemsEnvKey),
	}
}

// Render produces the plain text representation of a report.
// The Tech Stack, SEO Health and Enhanced Business Metadata sections are only
// included when the V2 UI feature is enabled.
func (r Renderer) Render(rep Report) string {
	s := strings.Builder{}

	s.WriteString(sectionSeparator)
	_, _ = fmt.Fprintf(&s, "Market Research Report: %s\n", rep.Company)
	_, _ = fmt.Fprintf(&s, "Domain: %s\n", rep.Domain)
	_, _ = fmt.Fprintf(&s, "Report ID: %s\n", idutils.GenerateReportID(rep.Domain))
	s.WriteString(sectionSeparator)

	if rep.Summary != "" {
		s.WriteString("\nSummary\n\n")
		s.WriteString(rep.Summary)
		s.WriteString("\n")
	}

	if !r.features.MarketResearchV2UI {
		if rep.TechStack != nil || rep.SEOHealth != nil || rep.BusinessMetadata != nil {
			log.Debug("Report %q contains V2 research data, but the V2 UI is disabled. Set %s=true to render it.", rep.Company, featureflags.MarketResearchV2UI.EnvName())
		}
		return s.String()
	}

	r.renderTechStack(&s, rep.TechStack)
	r.renderSEOHealth(&s, rep.SEOHealth)
	r.renderBusinessMetadata(&s, rep.BusinessMetadata)

	return s.String()
}

func (r Renderer) renderTechStack(s *strings.Builder, entries []TechStackEntry) {
	if len(entries) == 0 {
		return
	}

	s.WriteString("\nTech Stack\n\n")

	shown := entries
	if len(shown) > r.maxSectionItems {
		shown = shown[:r.maxSectionItems]
	}

	for _, e := range shown {
		_, _ = fmt.Fprintf(s, "  - %s", e.Name)
		if e.Category != "" {
			_, _ = fmt.Fprintf(s, " (%s)", e.Category)
		}
		if e.Confidence > 0 {
			_, _ = fmt.Fprintf(s, " [confidence: %.0f%%]", e.Confidence*100)
		}
		s.WriteString("\n")
	}

	if len(entries) > len(shown) {
		_, _ = fmt.Fprintf(s, "  ... and %d more\n", len(entries)-len(shown))
	}
}

func (r Renderer) renderSEOHealth(s *strings.Builder, seo *SEOHealth) {
	if seo == nil {
		return
	}

	s.WriteString("\nSEO Health\n\n")
	_, _ = fmt.Fprintf(s, "  Score: %d/100\n", seo.Score)
	for _, issue := range seo.Issues {
		_, _ = fmt.Fprintf(s, "  ! %s\n", issue)
	}
}

func (r Renderer) renderBusinessMetadata(s *strings.Builder, meta *BusinessMetadata) {
	if meta == nil {
		return
	}

	s.WriteString("\nEnhanced Business Metadata\n\n")
	if meta.Industry != "" {
		_, _ = fmt.Fprintf(s, "  Industry: %s\n", meta.Industry)
	}
	if meta.EmployeeRange != "" {
		_, _ = fmt.Fprintf(s, "  Employees: %s\n", meta.EmployeeRange)
	}
	if meta.FundingStage != "" {
		_, _ = fmt.Fprintf(s, "  Funding: %s\n", meta.FundingStage)
	}
	for _, p := range meta.SocialProfiles {
		_, _ = fmt.Fprintf(s, "  Social: %s\n", p)
	}
}
