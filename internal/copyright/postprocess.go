// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package copyright

// normalizeLine trims a trailing license-reference sentence from a
// matched copyright phrase. Source files sometimes embed a copyright
// line immediately followed by a license-reference sentence on the same
// logical line; only the copyright portion is attribution-worthy.
func normalizeLine(line string) string {
	if m := licenseCombinationPattern.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return line
}
