// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package copyright

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Manifest attributes that identify a vendor. Manifests carry no
// explicit copyright statement, but the vendor name serves as a
// fallback attribution when notice files yield nothing.
const (
	implementationVendorAttr = "implementation-vendor"
	bundleVendorAttr         = "bundle-vendor"
)

// scanManifestVendors parses the metadata descriptor as key/value
// attribute pairs and extracts the vendor-like fields. No filtering is
// applied; manifest fields are treated as already clean.
func scanManifestVendors(r io.Reader) ([]string, error) {
	attrs, err := parseManifestMain(r)
	if err != nil {
		return nil, err
	}

	var vendors []string
	for _, key := range []string{implementationVendorAttr, bundleVendorAttr} {
		if value := attrs[key]; value != "" {
			vendors = append(vendors, value)
		}
	}
	return vendors, nil
}

// parseManifestMain reads the main section of a jar manifest: one
// "Key: Value" attribute per line, values continued on lines starting
// with a single space, section terminated by the first blank line.
// Keys are lower-cased; the manifest format treats them
// case-insensitively.
func parseManifestMain(r io.Reader) (map[string]string, error) {
	attrs := make(map[string]string)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4*1024), maxLineSize)

	var lastKey string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			break
		}
		if strings.HasPrefix(line, " ") {
			// Continuation of the previous attribute's value.
			if lastKey != "" {
				attrs[lastKey] += line[1:]
			}
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			// Malformed attribute line; the rest of the section is
			// unlikely to parse sensibly.
			return attrs, fmt.Errorf("malformed manifest attribute: %q", line)
		}
		lastKey = strings.ToLower(strings.TrimSpace(key))
		attrs[lastKey] = strings.TrimLeft(value, " ")
	}
	if err := scanner.Err(); err != nil {
		return attrs, fmt.Errorf("reading manifest: %w", err)
	}
	return attrs, nil
}
