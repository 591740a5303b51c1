// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package copyright

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"attrib-scan/internal/filters"
)

// maxLineSize bounds a single scanned line. Notice files are prose;
// anything beyond this is not a copyright statement.
const maxLineSize = 1024 * 1024

// scanNoticeText reads a notice/license candidate line by line and
// returns the copyright candidates it yields, in encounter order. A
// single file may yield multiple candidates. A read failure returns the
// candidates found so far together with the error; the caller treats
// the file as skip-and-continue.
func scanNoticeText(r io.Reader, rules *filters.Set) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var found []string
	for scanner.Scan() {
		line := scanner.Text()
		if captured, ok := matchCopyrightLine(line, rules); ok {
			found = append(found, normalizeLine(captured))
		} else if blockStartPattern.MatchString(line) {
			found = append(found, extractBlock(scanner, rules)...)
		}
	}
	if err := scanner.Err(); err != nil {
		return found, fmt.Errorf("reading notice text: %w", err)
	}
	return found, nil
}

// matchCopyrightLine applies the copyright-line pattern and the filter
// rule set to one line. The returned capture is trimmed but not yet
// post-processed.
func matchCopyrightLine(line string, rules *filters.Set) (string, bool) {
	m := copyrightLinePattern.FindStringSubmatch(line)
	if m == nil || rules.Ignore(m[1]) {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// extractBlock consumes lines following a block-start marker until a
// new "## " section header or end of stream. Lines that independently
// match the copyright-line pattern are recorded directly; everything
// else accumulates into one combined block candidate. The terminating
// header line is consumed; normal scanning resumes on the next line.
func extractBlock(scanner *bufio.Scanner, rules *filters.Set) []string {
	var found []string
	var block strings.Builder

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "## ") {
			break
		}
		if trimmed == "" {
			continue
		}
		if captured, ok := matchCopyrightLine(line, rules); ok {
			found = append(found, captured)
		} else {
			block.WriteString(trimmed)
			block.WriteByte(' ')
		}
	}

	// The block often opens with the bare keyword; strip it once.
	combined := blockLeadingCopyright.ReplaceAllString(block.String(), "")
	combined = strings.TrimSpace(combined)
	if combined != "" {
		found = append(found, normalizeLine(combined))
	}
	return found
}
