// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package archive provides read-only iteration over zip-family archive
// entries with per-entry streams that are closed on every exit path.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
)

// Entry is one file within an archive. The content stream is opened on
// demand and read once during a scan pass.
type Entry struct {
	Name string
	open func() (io.ReadCloser, error)
}

// Open returns the entry's content stream. The caller must close it.
func (e Entry) Open() (io.ReadCloser, error) {
	return e.open()
}

// Walk opens the archive at path and calls visit for every file entry.
// Directory entries are skipped. A non-nil error from visit aborts the
// walk and is returned unchanged.
func Walk(path string, visit func(Entry) error) error {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("opening archive %s: %w", path, err)
	}
	defer reader.Close()

	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		if err := visit(Entry{Name: file.Name, open: file.Open}); err != nil {
			return err
		}
	}
	return nil
}
