// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package artifact models coordinate-addressed build dependencies and
// resolves them to local archive files.
package artifact

import (
	"fmt"
	"strings"
)

// Well-known packaging types
const (
	PackagingJar    = "jar"
	PackagingBundle = "bundle"
	PackagingPom    = "pom"
	PackagingSource = "java-source"
)

// Descriptor identifies one versioned build dependency
type Descriptor struct {
	Group      string `yaml:"group"`
	Name       string `yaml:"name"`
	Version    string `yaml:"version"`
	Scope      string `yaml:"scope,omitempty"`
	Classifier string `yaml:"classifier,omitempty"`
	Packaging  string `yaml:"packaging,omitempty"`
}

// WithPackaging derives a sibling descriptor with identical coordinates
// and a different packaging type, e.g. to request the source variant
func (d Descriptor) WithPackaging(packaging string) Descriptor {
	d.Packaging = packaging
	return d
}

// Coordinates returns the group:name:version triple
func (d Descriptor) Coordinates() string {
	return fmt.Sprintf("%s:%s:%s", d.Group, d.Name, d.Version)
}

// String renders the full coordinates including packaging and classifier
func (d Descriptor) String() string {
	parts := []string{d.Group, d.Name, d.Version}
	if d.Packaging != "" {
		parts = append(parts, d.Packaging)
	}
	if d.Classifier != "" {
		parts = append(parts, d.Classifier)
	}
	return strings.Join(parts, ":")
}

// Validate reports descriptors that cannot be resolved at all
func (d Descriptor) Validate() error {
	if d.Group == "" || d.Name == "" || d.Version == "" {
		return fmt.Errorf("descriptor %q is missing group, name, or version", d.String())
	}
	return nil
}
