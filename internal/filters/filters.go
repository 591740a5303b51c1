// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package filters holds the rule set that disqualifies text which looks
// like a copyright statement but is license boilerplate or placeholder
// text. Rules are loaded once from a bundled resource and are immutable
// afterwards; an alternative rule file can be injected for testing or
// via configuration.
package filters

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

//go:embed copyright-filters.txt
var bundledRules []byte

// Set is an immutable, compiled collection of filter rules
type Set struct {
	patterns []*regexp.Regexp
	sources  []string
}

// Parse reads newline-delimited filter rules. Lines starting with "#"
// are comments. Every other non-empty line is compiled as a
// case-insensitive regular expression.
func Parse(r io.Reader) (*Set, error) {
	set := &Set{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		pattern, err := regexp.Compile("(?i)" + line)
		if err != nil {
			return nil, fmt.Errorf("invalid filter rule %q: %w", line, err)
		}
		set.patterns = append(set.patterns, pattern)
		set.sources = append(set.sources, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading filter rules: %w", err)
	}

	return set, nil
}

// Load reads a filter rule file from disk
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading filter file: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Empty returns a set with no rules. Nothing is ever filtered, which is
// the permissive fallback when the bundled resource cannot be loaded.
func Empty() *Set {
	return &Set{}
}

var (
	defaultOnce sync.Once
	defaultSet  *Set
	defaultErr  error
)

// Default returns the set compiled from the bundled filter resource.
// The resource is parsed exactly once; on failure an empty set is
// returned and the error is retained for DefaultErr.
func Default() *Set {
	defaultOnce.Do(func() {
		defaultSet, defaultErr = Parse(bytes.NewReader(bundledRules))
		if defaultErr != nil {
			defaultSet = Empty()
		}
	})
	return defaultSet
}

// DefaultErr reports whether loading the bundled filter resource
// failed. Callers log it and continue with the permissive empty set.
func DefaultErr() error {
	Default()
	return defaultErr
}

// Ignore reports whether any rule matches anywhere within text
func (s *Set) Ignore(text string) bool {
	_, ignored := s.MatchingRule(text)
	return ignored
}

// MatchingRule returns the source text of the first rule that matches
// anywhere within text, if any
func (s *Set) MatchingRule(text string) (string, bool) {
	for i, pattern := range s.patterns {
		if pattern.MatchString(text) {
			return s.sources[i], true
		}
	}
	return "", false
}

// Len returns the number of loaded rules
func (s *Set) Len() int {
	return len(s.patterns)
}
