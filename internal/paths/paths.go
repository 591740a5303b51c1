// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"os"
	"path/filepath"
)

// GetConfigDir returns the attrib-scan configuration directory.
// An explicit ATTRIB_SCAN_CONFIG_DIR override wins; otherwise the XDG
// config directory is used, falling back to ~/.attrib-scan.
func GetConfigDir() string {
	if dir := os.Getenv("ATTRIB_SCAN_CONFIG_DIR"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "attrib-scan")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".attrib-scan"
	}
	return filepath.Join(home, ".config", "attrib-scan")
}

// GetConfigFile returns the path to the main config file
func GetConfigFile() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// GetFiltersFile returns the path to a user-provided filter rule file,
// which overrides the bundled filter resource when present
func GetFiltersFile() string {
	return filepath.Join(GetConfigDir(), "copyright-filters.txt")
}
