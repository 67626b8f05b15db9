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

// Package report defines the market research report model and its plain text rendering.
package report

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// Report is a single market research result for one company/domain pair.
type Report struct {
	Company string `yaml:"company"`
	Domain  string `yaml:"domain"`
	Summary string `yaml:"summary,omitempty"`

	// V2 research data. Only rendered when the V2 UI feature is enabled.
	TechStack        []TechStackEntry  `yaml:"techStack,omitempty"`
	SEOHealth        *SEOHealth        `yaml:"seoHealth,omitempty"`
	BusinessMetadata *BusinessMetadata `yaml:"businessMetadata,omitempty"`
}

// TechStackEntry describes one detected technology of the researched site.
type TechStackEntry struct {
	Name       string  `yaml:"name"`
	Category   string  `yaml:"category,omitempty"`
	Confidence float64 `yaml:"confidence,omitempty"`
}

// SEOHealth summarizes the SEO audit of the researched site.
type SEOHealth struct {
	Score  int      `yaml:"score"`
	Issues []string `yaml:"issues,omitempty"`
}

// BusinessMetadata holds the enhanced company information gathered by the V2 pipeline.
type BusinessMetadata struct {
	Industry       string   `yaml:"industry,omitempty"`
	EmployeeRange  string   `yaml:"employeeRange,omitempty"`
	FundingStage   string   `yaml:"fundingStage,omitempty"`
	SocialProfiles []string `yaml:"socialProfiles,omitempty"`
}

// Load reads and parses a report YAML file.
func Load(fs afero.Fs, path string) (Report, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read report file %q: %w", path, err)
	}

	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("failed to parse report file %q: %w", path, err)
	}

	if r.Company == "" {
		return Report{}, fmt.Errorf("report file %q is missing the mandatory 'company' field", path)
	}
	if r.Domain == "" {
		return Report{}, fmt.Errorf("report file %q is missing the mandatory 'domain' field", path)
	}

	return r, nil
}
