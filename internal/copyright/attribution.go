// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package copyright

// Attribution is the per-artifact outcome of an extraction run, as
// reported to the dependency-reporting stage.
type Attribution struct {
	Coordinates string `json:"coordinates" yaml:"coordinates"`
	Packaging   string `json:"packaging,omitempty" yaml:"packaging,omitempty"`
	Copyright   string `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	Found       bool   `json:"found" yaml:"found"`
}
