// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package copyright

import "regexp"

var (
	// noticeFilePattern classifies archive entries worth scanning for
	// copyright text: a file anywhere in the archive, optionally
	// prefixed by a component name and a hyphen, whose base name
	// (ignoring a .md/.txt/.xml extension) is exactly notice, license,
	// licence, or pom. Matched against the lower-cased entry name.
	noticeFilePattern = regexp.MustCompile(`(?i)^(?:.+/)?(?:[^/]+-)?(?:notice|license|licence|pom)(?:\.(?:md|txt|xml))?$`)

	// copyrightLinePattern matches the word Copyright, an optional
	// marker (the © symbol, the literal "(c)", or the templated
	// "holder>\s*=" fragment), and captures the remaining text up to
	// trailing whitespace or quote characters.
	copyrightLinePattern = regexp.MustCompile(`(?i)Copyright\s+(?:(?:©|\(c\)|holder>\s*=)\s+)?(.+?)[\s"]*$`)

	// licenseCombinationPattern recognizes a copyright phrase
	// immediately followed, in the same sentence-terminated unit, by
	// license-reference prose ending in the word "license."
	licenseCombinationPattern = regexp.MustCompile(`(?i)^(.+)\.\s.+license\.$`)

	// blockStartPattern marks the start of a multi-line copyright
	// block: a markdown-style "## Copyright" section header on a line
	// of its own.
	blockStartPattern = regexp.MustCompile(`(?i)^\s*##\s*Copyright\s*$`)

	// blockLeadingCopyright strips a single leading copyright keyword
	// from an accumulated block.
	blockLeadingCopyright = regexp.MustCompile(`(?i)^copyright\s*`)
)

// manifestEntryName is the fixed metadata descriptor location within an
// archive, compared against the lower-cased entry name.
const manifestEntryName = "meta-inf/manifest.mf"

// MatchLine applies the copyright-line pattern to one line of text and
// returns the captured copyright text. Used by the filtercheck tool to
// exercise candidate lines against the filter rule set.
func MatchLine(line string) (string, bool) {
	m := copyrightLinePattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}
