// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"attrib-scan/internal/artifact"
	"attrib-scan/internal/config"
	"attrib-scan/internal/copyright"
	"attrib-scan/internal/filters"
	"attrib-scan/internal/help"
	"attrib-scan/internal/observability"
	"attrib-scan/internal/version"

	"attrib-scan/internal/formatters"
	_ "attrib-scan/internal/formatters/csv"
	_ "attrib-scan/internal/formatters/json"
	_ "attrib-scan/internal/formatters/text"
	_ "attrib-scan/internal/formatters/yaml"

	"golang.org/x/term"
)

// configFlags holds command line flag values
type configFlags struct {
	inputFile    string
	listFile     string
	repoRoot     string
	configFile   string
	profileName  string
	outputFormat string
	outputFile   string
	filtersFile  string
	verbose      bool
	debug        bool
	noColor      bool
	quiet        bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format      string
	verbose     bool
	debug       bool
	noColor     bool
	quiet       bool
	repository  string
	filtersFile string
}

func main() {
	inputFile := flag.String("file", "", "Archive file or directory of archives to scan")
	listFile := flag.String("list", "", "YAML descriptor list resolved against the local repository")
	repoRoot := flag.String("repo", "", "Local repository root (default: ~/.m2/repository)")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	profileName := flag.String("profile", "", "Profile name to use from config file")
	listProfiles := flag.Bool("list-profiles", false, "List available profiles in config file")
	filtersFile := flag.String("filters", "", "Alternative filter rule file (default: bundled rules)")
	outputFormat := flag.String("format", "", "Output format: text, json, csv, yaml (default: text)")
	outputFile := flag.String("output", "", "Path to output file (if not specified, output to stdout)")
	verbose := flag.Bool("verbose", false, "Display packaging detail for each artifact")
	debug := flag.Bool("debug", false, "Enable debug logging of the extraction flow")
	quiet := flag.Bool("quiet", false, "Suppress the run summary (useful for scripts and CI/CD)")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	showHelp := flag.Bool("help", false, "Show help information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	flags := configFlags{
		inputFile:    *inputFile,
		listFile:     *listFile,
		repoRoot:     *repoRoot,
		configFile:   *configFile,
		profileName:  *profileName,
		outputFormat: *outputFormat,
		outputFile:   *outputFile,
		filtersFile:  *filtersFile,
		verbose:      *verbose,
		debug:        *debug,
		noColor:      *noColor,
		quiet:        *quiet,
	}

	cfg := config.LoadConfigOrDefault(flags.configFile)

	if *listProfiles {
		fmt.Println("Available profiles:")
		for _, name := range cfg.ListProfiles() {
			profile := cfg.GetProfile(name)
			fmt.Printf("  %s - %s\n", name, profile.Description)
		}
		os.Exit(0)
	}

	final := resolveConfiguration(cfg, flags)

	if *showHelp {
		help.NewSystem(final.noColor).ShowGeneralHelp()
		os.Exit(0)
	}

	os.Exit(run(flags, final))
}

// isFlagSet checks whether a flag was explicitly provided on the command line
func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// resolveConfiguration merges config file, profile, and command line
// flags. Flags win over the profile, which wins over the defaults.
func resolveConfiguration(cfg *config.Config, flags configFlags) finalConfiguration {
	final := finalConfiguration{
		format:      cfg.Defaults.Format,
		verbose:     cfg.Defaults.Verbose,
		debug:       cfg.Defaults.Debug,
		noColor:     cfg.Defaults.NoColor,
		quiet:       cfg.Defaults.Quiet,
		repository:  cfg.Defaults.Repository,
		filtersFile: cfg.Defaults.FiltersFile,
	}

	if flags.profileName != "" {
		if profile := cfg.GetProfile(flags.profileName); profile != nil {
			if profile.Format != "" {
				final.format = profile.Format
			}
			final.verbose = profile.Verbose
			final.debug = profile.Debug
			final.noColor = profile.NoColor
			final.quiet = profile.Quiet
			if profile.Repository != "" {
				final.repository = profile.Repository
			}
			if profile.FiltersFile != "" {
				final.filtersFile = profile.FiltersFile
			}
		} else {
			fmt.Fprintf(os.Stderr, "Warning: profile '%s' not found in config, using defaults\n", flags.profileName)
		}
	}

	if flags.outputFormat != "" {
		final.format = flags.outputFormat
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}
	if isFlagSet("quiet") {
		final.quiet = flags.quiet
	}
	if flags.repoRoot != "" {
		final.repository = flags.repoRoot
	}
	if flags.filtersFile != "" {
		final.filtersFile = flags.filtersFile
	}

	if final.format == "" {
		final.format = "text"
	}

	// Colors are pointless when stdout is redirected.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		final.noColor = true
	}

	return final
}

func run(flags configFlags, final finalConfiguration) int {
	observer := buildObserver(final)

	rules, err := buildFilterSet(final)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var results []copyright.Attribution
	switch {
	case flags.inputFile != "":
		results, err = scanPath(flags.inputFile, rules, observer)
	case flags.listFile != "":
		results, err = scanList(flags.listFile, final.repository, rules, observer)
	default:
		fmt.Fprintln(os.Stderr, "Error: either --file or --list is required (see --help)")
		return 1
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	output, err := formatters.Export(final.format, results, formatters.FormatterOptions{
		Verbose: final.verbose,
		NoColor: final.noColor,
		Quiet:   final.quiet,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if flags.outputFile != "" {
		if err := os.WriteFile(flags.outputFile, []byte(output+"\n"), 0600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			return 1
		}
	} else {
		fmt.Println(output)
	}
	return 0
}

// buildObserver wires diagnostics according to verbosity. Warnings and
// match events are observational only and go to stderr.
func buildObserver(final finalConfiguration) *observability.StandardObserver {
	if final.debug {
		debugObserver := observability.NewDebugObserver(os.Stderr)
		observer := observability.NewStandardObserver(observability.ObservabilityDebug, os.Stderr)
		observer.DebugObserver = debugObserver
		return observer
	}
	if final.verbose {
		return observability.NewStandardObserver(observability.ObservabilityEvents, os.Stderr)
	}
	return observability.NewStandardObserver(observability.ObservabilityOff, os.Stderr)
}

// buildFilterSet loads the configured filter rule file, or the bundled
// rules when none is configured. A broken bundled resource degrades to
// no filtering rather than failing the run.
func buildFilterSet(final finalConfiguration) (*filters.Set, error) {
	if final.filtersFile != "" {
		rules, err := filters.Load(final.filtersFile)
		if err != nil {
			return nil, fmt.Errorf("loading filter rules from %s: %w", final.filtersFile, err)
		}
		return rules, nil
	}

	rules := filters.Default()
	if err := filters.DefaultErr(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load bundled copyright filters, no filtering will be applied: %v\n", err)
	}
	return rules, nil
}

// scanPath scans a single archive file, or every archive under a
// directory. Source and javadoc siblings are picked up through their
// primary archive, not scanned as artifacts of their own.
func scanPath(path string, rules *filters.Set, observer *observability.StandardObserver) ([]copyright.Attribution, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", path, err)
	}

	var archiveFiles []string
	if info.IsDir() {
		err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			name := strings.ToLower(d.Name())
			if !strings.HasSuffix(name, ".jar") {
				return nil
			}
			if strings.HasSuffix(name, "-sources.jar") || strings.HasSuffix(name, "-javadoc.jar") {
				return nil
			}
			archiveFiles = append(archiveFiles, p)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scanning directory %s: %w", path, err)
		}
	} else {
		archiveFiles = []string{path}
	}

	var results []copyright.Attribution
	for _, archiveFile := range archiveFiles {
		desc := artifact.DescriptorForFile(archiveFile)
		extractor := copyright.New(artifact.FileResolver{Path: archiveFile}, rules)
		extractor.SetObserver(observer)

		text, found := extractor.ExtractCopyright(desc)
		results = append(results, copyright.Attribution{
			Coordinates: filepath.Base(archiveFile),
			Packaging:   desc.Packaging,
			Copyright:   text,
			Found:       found,
		})
	}
	return results, nil
}

// scanList resolves every descriptor in a YAML list against the local
// repository and extracts attributions for each
func scanList(listPath, repository string, rules *filters.Set, observer *observability.StandardObserver) ([]copyright.Attribution, error) {
	descriptors, err := artifact.LoadList(listPath)
	if err != nil {
		return nil, err
	}

	resolver := artifact.NewLocalRepository(repository)
	extractor := copyright.New(resolver, rules)
	extractor.SetObserver(observer)

	var results []copyright.Attribution
	for _, desc := range descriptors {
		text, found := extractor.ExtractCopyright(desc)
		results = append(results, copyright.Attribution{
			Coordinates: desc.Coordinates(),
			Packaging:   desc.Packaging,
			Copyright:   text,
			Found:       found,
		})
	}
	return results, nil
}
