// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package artifact

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// List is the YAML descriptor list consumed in batch mode. It is the
// hand-off format from the dependency-resolution stage of a build.
type List struct {
	Artifacts []Descriptor `yaml:"artifacts"`
}

// LoadList reads a YAML descriptor list from path
func LoadList(path string) ([]Descriptor, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading descriptor list: %w", err)
	}

	var list List
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parsing descriptor list: %w", err)
	}

	for i := range list.Artifacts {
		if list.Artifacts[i].Packaging == "" {
			list.Artifacts[i].Packaging = PackagingJar
		}
	}
	return list.Artifacts, nil
}
