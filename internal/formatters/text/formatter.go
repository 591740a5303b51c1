// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"attrib-scan/internal/copyright"
	"attrib-scan/internal/formatters"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(results []copyright.Attribution, options formatters.FormatterOptions) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	if len(results) == 0 {
		return "No artifacts scanned.", nil
	}

	var sb strings.Builder
	for _, result := range results {
		f.writeResult(&sb, result, options)
	}

	if !options.Quiet {
		f.writeSummary(&sb, results)
	}
	return sb.String(), nil
}

// writeResult renders one artifact's attribution line
func (f *Formatter) writeResult(sb *strings.Builder, result copyright.Attribution, options formatters.FormatterOptions) {
	name := result.Coordinates
	if options.Verbose && result.Packaging != "" {
		name = fmt.Sprintf("%s (%s)", name, result.Packaging)
	}

	if result.Found {
		fmt.Fprintf(sb, "%s: %s\n", f.colors["cyan"].Sprint(name), result.Copyright)
	} else {
		fmt.Fprintf(sb, "%s: %s\n", f.colors["cyan"].Sprint(name), f.colors["yellow"].Sprint("no copyright information found"))
	}
}

// writeSummary renders the run summary
func (f *Formatter) writeSummary(sb *strings.Builder, results []copyright.Attribution) {
	found := 0
	for _, result := range results {
		if result.Found {
			found++
		}
	}

	sb.WriteString("\n")
	sb.WriteString(f.colors["white"].Sprint("Summary"))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "  Artifacts scanned:   %d\n", len(results))
	fmt.Fprintf(sb, "  With attribution:    %s\n", f.colors["green"].Sprintf("%d", found))
	fmt.Fprintf(sb, "  Without attribution: %s\n", f.colors["yellow"].Sprintf("%d", len(results)-found))
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
