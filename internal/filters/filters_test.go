// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		"# a comment",
		"",
		"yyyy",
		"<year>",
		"^notices?\\b",
	}, "\n")

	set, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len(), "comments and blank lines are not rules")
}

func TestParse_CaseInsensitive(t *testing.T) {
	set, err := Parse(strings.NewReader("sample copyright"))
	require.NoError(t, err)

	assert.True(t, set.Ignore("This is a SAMPLE Copyright notice"))
	assert.False(t, set.Ignore("2023 Acme Corp"))
}

func TestParse_InvalidRule(t *testing.T) {
	_, err := Parse(strings.NewReader("valid\n([unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[unclosed")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.txt")
	writeFile(t, path, "# custom rules\n^internal use only\n")

	set, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
	assert.True(t, set.Ignore("Internal Use Only"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	set := Default()
	require.NoError(t, DefaultErr())
	require.NotNil(t, set)
	assert.Greater(t, set.Len(), 0)

	// Same compiled set on every call.
	assert.Same(t, set, Default())
}

func TestDefault_FiltersPlaceholders(t *testing.T) {
	set := Default()

	ignored := []string{
		"yyyy Acme Corp",
		"19xx The Authors",
		"<year> <owner>",
		"[year] [fullname]",
		"[yyyy] [name of copyright owner]",
		"YOUR NAME HERE",
		"notice appears in all copies",
		"holders and contributors",
		"license terms apply",
		"laws of the United States",
		"ownership of intellectual property",
		"statement from the contributor",
	}
	for _, text := range ignored {
		assert.True(t, set.Ignore(text), "expected %q to be filtered", text)
	}

	kept := []string{
		"2023 Jane Doe",
		"(c) 2015-2020 Example Inc.",
		"2019 Acme Corporation. All rights reserved",
	}
	for _, text := range kept {
		rule, filtered := set.MatchingRule(text)
		assert.False(t, filtered, "expected %q to pass, hit rule %q", text, rule)
	}
}

func TestMatchingRule(t *testing.T) {
	set, err := Parse(strings.NewReader("yyyy\n<owner>"))
	require.NoError(t, err)

	rule, ok := set.MatchingRule("1999-yyyy Someone")
	require.True(t, ok)
	assert.Equal(t, "yyyy", rule)

	_, ok = set.MatchingRule("2004 Someone")
	assert.False(t, ok)
}

func TestEmpty(t *testing.T) {
	set := Empty()
	assert.Equal(t, 0, set.Len())
	assert.False(t, set.Ignore("yyyy"))
}
