// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolver maps a descriptor to a local archive file. Resolution is
// idempotent; a failure means the artifact is not available locally and
// the caller skips it.
type Resolver interface {
	Resolve(d Descriptor) (string, error)
}

// LocalRepository resolves descriptors against the standard local
// repository directory layout: group segments as directories, then
// name/version/name-version[-classifier].<ext>.
type LocalRepository struct {
	Root string
}

// NewLocalRepository creates a resolver rooted at root. An empty root
// falls back to the conventional ~/.m2/repository location.
func NewLocalRepository(root string) *LocalRepository {
	if root == "" {
		if home, err := os.UserHomeDir(); err == nil {
			root = filepath.Join(home, ".m2", "repository")
		}
	}
	return &LocalRepository{Root: root}
}

// Resolve returns the path of the archive file for d, or an error if
// the file does not exist in the repository
func (r *LocalRepository) Resolve(d Descriptor) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}

	base := d.Name + "-" + d.Version
	if classifier := classifierFor(d); classifier != "" {
		base += "-" + classifier
	}
	base += extensionFor(d.Packaging)

	path := filepath.Join(
		r.Root,
		filepath.Join(strings.Split(d.Group, ".")...),
		d.Name,
		d.Version,
		base,
	)

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("artifact %s not found at %s: %w", d.String(), path, err)
	}
	return path, nil
}

// classifierFor maps packaging types to the file-name classifier. The
// source packaging implies the "sources" classifier unless the
// descriptor carries its own.
func classifierFor(d Descriptor) string {
	if d.Packaging == PackagingSource {
		return "sources"
	}
	return d.Classifier
}

// extensionFor maps packaging types to file extensions. Bundles and
// source artifacts are physically jars.
func extensionFor(packaging string) string {
	switch packaging {
	case PackagingPom:
		return ".pom"
	case "", PackagingJar, PackagingBundle, PackagingSource:
		return ".jar"
	default:
		return "." + packaging
	}
}

// FileResolver resolves a single pre-resolved archive file. The source
// variant resolves to a "-sources" sibling next to the file when one
// exists.
type FileResolver struct {
	Path string
}

// Resolve implements Resolver for a direct file scan
func (r FileResolver) Resolve(d Descriptor) (string, error) {
	if d.Packaging == PackagingSource {
		ext := filepath.Ext(r.Path)
		sibling := strings.TrimSuffix(r.Path, ext) + "-sources" + ext
		if _, err := os.Stat(sibling); err != nil {
			return "", fmt.Errorf("no source archive next to %s: %w", r.Path, err)
		}
		return sibling, nil
	}
	if _, err := os.Stat(r.Path); err != nil {
		return "", fmt.Errorf("archive %s not found: %w", r.Path, err)
	}
	return r.Path, nil
}

// DescriptorForFile derives best-effort coordinates from an archive
// file name of the form name-version.jar. Files that don't follow the
// convention keep the whole base name and an empty version.
func DescriptorForFile(path string) Descriptor {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	// The version starts at the first hyphen followed by a digit.
	for i := 0; i < len(base)-1; i++ {
		if base[i] == '-' && base[i+1] >= '0' && base[i+1] <= '9' {
			return Descriptor{
				Name:      base[:i],
				Version:   base[i+1:],
				Packaging: PackagingJar,
			}
		}
	}
	return Descriptor{Name: base, Packaging: PackagingJar}
}
