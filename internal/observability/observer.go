// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"encoding/json"
	"io"
	"time"
)

// StandardObserver implements observability for all components
type StandardObserver struct {
	level         ObservabilityLevel
	writer        io.Writer
	DebugObserver *DebugObserver // Reference to debug observer when in debug mode
}

type ObservabilityLevel int

const (
	ObservabilityOff    ObservabilityLevel = 0
	ObservabilityEvents ObservabilityLevel = 1
	ObservabilityDebug  ObservabilityLevel = 2
)

// NewStandardObserver creates observability component
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	return &StandardObserver{
		level:  level,
		writer: writer,
	}
}

// StartTiming returns a function to complete timing
func (o *StandardObserver) StartTiming(component, operation, target string) func(success bool, matchCount int, metadata map[string]interface{}) {
	start := time.Now()

	return func(success bool, matchCount int, metadata map[string]interface{}) {
		duration := time.Since(start)

		o.LogOperation(OperationData{
			Component:  component,
			Operation:  operation,
			Target:     target,
			DurationMs: duration.Milliseconds(),
			Success:    success,
			MatchCount: matchCount,
			Metadata:   metadata,
		})
	}
}

// LogMatch emits an info-level event for one extracted copyright match
func (o *StandardObserver) LogMatch(component, archivePath, entryName, text string) {
	o.LogOperation(OperationData{
		Component: component,
		Operation: "match",
		Target:    archivePath,
		Success:   true,
		Metadata: map[string]interface{}{
			"entry": entryName,
			"text":  text,
		},
	})
}

// LogWarning emits a warn-level event. Warnings are observational only;
// the scan continues with whatever else is available.
func (o *StandardObserver) LogWarning(component, target string, err error) {
	o.LogOperation(OperationData{
		Component: component,
		Operation: "warning",
		Target:    target,
		Success:   false,
		Error:     err.Error(),
	})
}

// LogOperation logs operation data
func (o *StandardObserver) LogOperation(data OperationData) {
	if o.level == ObservabilityOff {
		return
	}

	data.Timestamp = time.Now().Format(time.RFC3339)

	json.NewEncoder(o.writer).Encode(data)
}

// OperationData for all components
type OperationData struct {
	Component  string                 `json:"component"`
	Operation  string                 `json:"operation"`
	Timestamp  string                 `json:"timestamp"`
	Target     string                 `json:"target,omitempty"`
	DurationMs int64                  `json:"duration_ms,omitempty"`
	Success    bool                   `json:"success"`
	Error      string                 `json:"error,omitempty"`
	MatchCount int                    `json:"match_count,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}
