// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package copyright

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"attrib-scan/internal/filters"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanText(t *testing.T, text string, rules *filters.Set) []string {
	t.Helper()
	if rules == nil {
		rules = filters.Empty()
	}
	found, err := scanNoticeText(strings.NewReader(text), rules)
	require.NoError(t, err)
	return found
}

func TestScanNoticeText_SingleLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"plain", "Copyright 2023 Jane Doe", "2023 Jane Doe"},
		{"symbol marker", "Copyright © 2019 Acme Corporation", "2019 Acme Corporation"},
		{"parenthesized marker", "Copyright (c) 2015-2020 Example Inc.", "2015-2020 Example Inc."},
		{"lower case keyword", "copyright 2018 widget co", "2018 widget co"},
		{"template fragment", "Copyright holder> = Acme Ltd", "Acme Ltd"},
		{"embedded mid line", "// Copyright 2018 Widget Co", "2018 Widget Co"},
		{"trailing quote stripped", `value = "Copyright 2020 Acme Corp"`, "2020 Acme Corp"},
		{"trailing whitespace stripped", "Copyright 2021 Spacer Inc   ", "2021 Spacer Inc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := scanText(t, tt.line, nil)
			require.Len(t, found, 1)
			assert.Equal(t, tt.want, found[0])
		})
	}
}

func TestScanNoticeText_NoMatch(t *testing.T) {
	text := strings.Join([]string{
		"This library is distributed in the hope that it will be useful.",
		"See the LICENSE file for details.",
		"Copyright", // bare keyword with no holder text
	}, "\n")

	assert.Empty(t, scanText(t, text, nil))
}

func TestScanNoticeText_MultipleMatches(t *testing.T) {
	text := strings.Join([]string{
		"Copyright 2019 First Holder",
		"unrelated prose",
		"Copyright (c) 2020 Second Holder",
	}, "\n")

	found := scanText(t, text, nil)
	assert.Equal(t, []string{"2019 First Holder", "2020 Second Holder"}, found)
}

func TestScanNoticeText_LicenseSentenceTrimmed(t *testing.T) {
	found := scanText(t, "Copyright 2023 Jane Doe. Licensed under the MIT license.", nil)
	require.Len(t, found, 1)
	assert.Equal(t, "2023 Jane Doe", found[0])

	// A full license-continuation sentence also survives the default
	// filter rules before being trimmed.
	found = scanText(t,
		"Copyright (c) 2023 Jane Doe. This is free software, released under the MIT license.",
		filters.Default())
	require.Len(t, found, 1)
	assert.Equal(t, "2023 Jane Doe", found[0])
}

func TestScanNoticeText_FilteredCandidates(t *testing.T) {
	text := strings.Join([]string{
		"Copyright [yyyy] [name of copyright owner]",
		"Copyright <year> <owner>",
		"Copyright 2022 Real Holder",
	}, "\n")

	found := scanText(t, text, filters.Default())
	assert.Equal(t, []string{"2022 Real Holder"}, found)
}

func TestScanNoticeText_Block(t *testing.T) {
	text := strings.Join([]string{
		"## Copyright",
		"Copyright 2021 First Author",
		"Some Holder",
		"",
		"and friends",
		"## License",
		"MIT",
	}, "\n")

	found := scanText(t, text, nil)
	assert.Equal(t, []string{"2021 First Author", "Some Holder and friends"}, found)
}

func TestScanNoticeText_BlockLeadingKeywordStripped(t *testing.T) {
	text := strings.Join([]string{
		"## Copyright",
		"Copyright",
		"2020 Block Corp",
		"## End",
	}, "\n")

	found := scanText(t, text, nil)
	assert.Equal(t, []string{"2020 Block Corp"}, found)
}

func TestScanNoticeText_BlockAtEndOfStream(t *testing.T) {
	text := strings.Join([]string{
		"##  copyright", // header matching is case and spacing tolerant
		"2019 Unterminated Inc",
	}, "\n")

	found := scanText(t, text, nil)
	assert.Equal(t, []string{"2019 Unterminated Inc"}, found)
}

func TestScanNoticeText_ResumesAfterBlock(t *testing.T) {
	text := strings.Join([]string{
		"## Copyright",
		"2018 Inside Block",
		"## Authors",
		"Copyright 2022 After Block",
	}, "\n")

	found := scanText(t, text, nil)
	assert.Equal(t, []string{"2018 Inside Block", "2022 After Block"}, found)
}

func TestScanNoticeText_EmptyBlock(t *testing.T) {
	text := strings.Join([]string{
		"## Copyright",
		"",
		"## License",
	}, "\n")

	assert.Empty(t, scanText(t, text, nil))
}

func TestScanNoticeText_ReadError(t *testing.T) {
	_, err := scanNoticeText(iotest.ErrReader(errors.New("short read")), filters.Empty())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "short read")
}

func TestNormalizeLine(t *testing.T) {
	assert.Equal(t, "2023 Jane Doe",
		normalizeLine("2023 Jane Doe. Licensed under the MIT license."))
	assert.Equal(t, "2023 Jane Doe. All rights reserved",
		normalizeLine("2023 Jane Doe. All rights reserved. Released under the Apache license."))
	assert.Equal(t, "2023 Jane Doe", normalizeLine("2023 Jane Doe"))
}

func TestMatchLine(t *testing.T) {
	captured, ok := MatchLine("Copyright (c) 2001 Pattern Co")
	require.True(t, ok)
	assert.Equal(t, "2001 Pattern Co", captured)

	_, ok = MatchLine("no statement here")
	assert.False(t, ok)
}
