// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package shared holds report structures used identically by the
// structured formatters so json and yaml output never drift apart.
package shared

import (
	"attrib-scan/internal/copyright"
)

// Report is the structured output document
type Report struct {
	Results []copyright.Attribution `json:"results" yaml:"results"`
	Summary Summary                 `json:"summary" yaml:"summary"`
}

// Summary aggregates one run
type Summary struct {
	Artifacts        int `json:"artifacts" yaml:"artifacts"`
	WithCopyright    int `json:"with_copyright" yaml:"with_copyright"`
	WithoutCopyright int `json:"without_copyright" yaml:"without_copyright"`
}

// BuildReport assembles the structured report from raw results
func BuildReport(results []copyright.Attribution) Report {
	report := Report{Results: results}
	if report.Results == nil {
		report.Results = []copyright.Attribution{}
	}

	report.Summary.Artifacts = len(results)
	for _, result := range results {
		if result.Found {
			report.Summary.WithCopyright++
		} else {
			report.Summary.WithoutCopyright++
		}
	}
	return report
}
