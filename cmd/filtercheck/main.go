// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"attrib-scan/internal/copyright"
	"attrib-scan/internal/filters"
)

func main() {
	var (
		filtersFile = flag.String("filters", "", "Filter rule file to check against (default: bundled rules)")
		inputFile   = flag.String("file", "", "Text file to check line by line (default: stdin)")
	)
	flag.Parse()

	rules, err := loadRules(*filtersFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d filter rules\n\n", rules.Len())

	input := os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		input = f
	}

	checkLines(input, rules)
}

func loadRules(path string) (*filters.Set, error) {
	if path != "" {
		return filters.Load(path)
	}
	if err := filters.DefaultErr(); err != nil {
		return nil, err
	}
	return filters.Default(), nil
}

// checkLines reports, for every input line, whether the copyright
// pattern captures anything and which filter rule (if any) would discard
// the capture.
func checkLines(r io.Reader, rules *filters.Set) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		captured, ok := copyright.MatchLine(line)
		if !ok {
			fmt.Printf("NO MATCH   %s\n", line)
			continue
		}

		if rule, filtered := rules.MatchingRule(captured); filtered {
			fmt.Printf("FILTERED   %q (rule: %s)\n", captured, rule)
			continue
		}
		fmt.Printf("KEPT       %q\n", captured)
	}
	if err := scanner.Err(); err != nil {
		fmt.Printf("Error reading input: %v\n", err)
		os.Exit(1)
	}
}
