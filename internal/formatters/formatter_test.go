// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"testing"

	"attrib-scan/internal/copyright"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFormatter struct {
	name string
}

func (s *stubFormatter) Format([]copyright.Attribution, FormatterOptions) (string, error) {
	return "stub output", nil
}

func (s *stubFormatter) Name() string          { return s.name }
func (s *stubFormatter) Description() string   { return "stub" }
func (s *stubFormatter) FileExtension() string { return ".stub" }

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&stubFormatter{name: "stub"})

	formatter, exists := registry.Get("stub")
	require.True(t, exists)
	assert.Equal(t, "stub", formatter.Name())

	_, exists = registry.Get("unknown")
	assert.False(t, exists)

	assert.Contains(t, registry.List(), "stub")
}

func TestRegistry_Replace(t *testing.T) {
	registry := NewRegistry()
	first := &stubFormatter{name: "dup"}
	second := &stubFormatter{name: "dup"}

	registry.Register(first)
	registry.Register(second)

	formatter, _ := registry.Get("dup")
	assert.Same(t, Formatter(second), formatter)
}

func TestExport_UnknownFormat(t *testing.T) {
	_, err := Export("does-not-exist", nil, FormatterOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
