// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, []byte("stub"), 0600))
}

func TestLocalRepository_Resolve(t *testing.T) {
	root := t.TempDir()
	want := filepath.Join(root, "com", "example", "lib", "1.0", "lib-1.0.jar")
	touch(t, want)

	repo := NewLocalRepository(root)
	got, err := repo.Resolve(Descriptor{Group: "com.example", Name: "lib", Version: "1.0", Packaging: PackagingJar})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLocalRepository_ResolveSourceVariant(t *testing.T) {
	root := t.TempDir()
	want := filepath.Join(root, "com", "example", "lib", "1.0", "lib-1.0-sources.jar")
	touch(t, want)

	repo := NewLocalRepository(root)
	got, err := repo.Resolve(Descriptor{Group: "com.example", Name: "lib", Version: "1.0", Packaging: PackagingSource})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLocalRepository_ResolvePom(t *testing.T) {
	root := t.TempDir()
	want := filepath.Join(root, "org", "example", "parent", "2.0", "parent-2.0.pom")
	touch(t, want)

	repo := NewLocalRepository(root)
	got, err := repo.Resolve(Descriptor{Group: "org.example", Name: "parent", Version: "2.0", Packaging: PackagingPom})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLocalRepository_ResolveClassifier(t *testing.T) {
	root := t.TempDir()
	want := filepath.Join(root, "com", "example", "lib", "1.0", "lib-1.0-linux-x86_64.jar")
	touch(t, want)

	repo := NewLocalRepository(root)
	got, err := repo.Resolve(Descriptor{
		Group: "com.example", Name: "lib", Version: "1.0",
		Packaging: PackagingJar, Classifier: "linux-x86_64",
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLocalRepository_ResolveMissing(t *testing.T) {
	repo := NewLocalRepository(t.TempDir())
	_, err := repo.Resolve(Descriptor{Group: "com.example", Name: "ghost", Version: "1.0", Packaging: PackagingJar})
	assert.Error(t, err)
}

func TestLocalRepository_ResolveInvalidDescriptor(t *testing.T) {
	repo := NewLocalRepository(t.TempDir())
	_, err := repo.Resolve(Descriptor{Name: "lib"})
	assert.Error(t, err)
}

func TestFileResolver(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "lib-1.0.jar")
	sources := filepath.Join(dir, "lib-1.0-sources.jar")
	touch(t, primary)
	touch(t, sources)

	resolver := FileResolver{Path: primary}

	got, err := resolver.Resolve(Descriptor{Name: "lib", Version: "1.0", Packaging: PackagingJar})
	require.NoError(t, err)
	assert.Equal(t, primary, got)

	got, err = resolver.Resolve(Descriptor{Name: "lib", Version: "1.0", Packaging: PackagingSource})
	require.NoError(t, err)
	assert.Equal(t, sources, got)
}

func TestFileResolver_MissingSourceSibling(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "lib-1.0.jar")
	touch(t, primary)

	resolver := FileResolver{Path: primary}
	_, err := resolver.Resolve(Descriptor{Name: "lib", Version: "1.0", Packaging: PackagingSource})
	assert.Error(t, err)
}

func TestDescriptorForFile(t *testing.T) {
	tests := []struct {
		path        string
		wantName    string
		wantVersion string
	}{
		{"commons-io-2.11.0.jar", "commons-io", "2.11.0"},
		{"/repo/path/guava-33.0-jre.jar", "guava", "33.0-jre"},
		{"lib-1.0-SNAPSHOT.jar", "lib", "1.0-SNAPSHOT"},
		{"noversion.jar", "noversion", ""},
		{"trailing-dash-.jar", "trailing-dash-", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			desc := DescriptorForFile(tt.path)
			assert.Equal(t, tt.wantName, desc.Name)
			assert.Equal(t, tt.wantVersion, desc.Version)
			assert.Equal(t, PackagingJar, desc.Packaging)
		})
	}
}
