// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
)

// System manages help content for the application
type System struct {
	noColor bool
	colors  map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	// Disable colors if requested
	if noColor {
		color.NoColor = true
	}

	return &System{
		noColor: noColor,
		colors: map[string]*color.Color{
			"title":   color.New(color.FgWhite, color.Bold),
			"header":  color.New(color.FgBlue, color.Bold),
			"item":    color.New(color.FgCyan),
			"example": color.New(color.FgMagenta),
		},
	}
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("Attrib Scan - Dependency Copyright Extraction Tool")
	fmt.Println("==================================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  attrib-scan --file <path-to-archive> [options]")
	fmt.Println("  attrib-scan --list <descriptor-list.yaml> --repo <local-repository> [options]")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --file\t<path>\tArchive file or directory of archives to scan")
	fmt.Fprintln(w, "  --list\t<path>\tYAML descriptor list resolved against the local repository")
	fmt.Fprintln(w, "  --repo\t<path>\tLocal repository root (default: ~/.m2/repository)")
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --profile\t<name>\tProfile name to use from config file")
	fmt.Fprintln(w, "  --list-profiles\t\tList available profiles in config file")
	fmt.Fprintln(w, "  --filters\t<path>\tAlternative filter rule file (default: bundled rules)")
	fmt.Fprintln(w, "  --format\t<format>\tOutput format: text, json, csv, yaml (default: text)")
	fmt.Fprintln(w, "  --output\t<path>\tPath to output file (if not specified, output to stdout)")
	fmt.Fprintln(w, "  --verbose\t\tDisplay packaging detail for each artifact")
	fmt.Fprintln(w, "  --debug\t\tEnable debug logging of the extraction flow")
	fmt.Fprintln(w, "  --quiet\t\tSuppress the run summary (useful for scripts and CI/CD)")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --help\t\tShow help information")
	fmt.Fprintln(w, "  --version\t\tShow version information")
	w.Flush()
	fmt.Println()

	h.colors["header"].Println("EXAMPLES:")
	h.colors["example"].Println("  attrib-scan --file lib/commons-codec-1.16.0.jar")
	h.colors["example"].Println("  attrib-scan --file ./lib --format csv --output attributions.csv")
	h.colors["example"].Println("  attrib-scan --list dependencies.yaml --repo ~/.m2/repository --profile ci")
	fmt.Println()

	h.colors["header"].Println("HOW IT WORKS:")
	fmt.Println("  Each artifact's archive (and its source archive, when present) is")
	fmt.Println("  scanned for notice, license, licence, and pom entries. Lines that")
	fmt.Println("  look like copyright statements are kept after a filter rule set")
	fmt.Println("  removes license boilerplate; manifest vendor attributes serve as a")
	fmt.Println("  fallback when no notice text matches. Distinct statements are")
	fmt.Println("  joined with \"; \" into one attribution per artifact.")
}
