// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package copyright

import "strings"

// entryClass routes an archive entry to the scanner that understands it
type entryClass int

const (
	// classIgnore marks entries that contribute nothing
	classIgnore entryClass = iota
	// classNotice marks notice/license candidates scanned line by line
	classNotice
	// classManifest marks the structured metadata descriptor
	classManifest
)

// classifyEntry decides how an archive entry is scanned. Pure
// classification on the entry path; no side effects.
func classifyEntry(name string) entryClass {
	lower := strings.ToLower(name)
	switch {
	case noticeFilePattern.MatchString(lower):
		return classNotice
	case lower == manifestEntryName:
		return classManifest
	default:
		return classIgnore
	}
}
