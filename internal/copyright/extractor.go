// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package copyright extracts copyright notices embedded in archive
// artifacts. It scans well-known license/notice files and the archive
// metadata descriptor for copyright-like text, applies a filter rule
// set that removes license boilerplate, and aggregates the results into
// a single attribution string per artifact.
package copyright

import (
	"io"
	"os"
	"strings"

	"attrib-scan/internal/archive"
	"attrib-scan/internal/artifact"
	"attrib-scan/internal/filters"
	"attrib-scan/internal/observability"
)

const componentName = "copyright_extractor"

// copyrightSeparator joins the distinct members of the chosen
// candidate set into the final attribution string.
const copyrightSeparator = "; "

// archiveExtension is the only resolved file type opened for entry
// iteration; other file types are skipped without error.
const archiveExtension = ".jar"

// Extractor locates copyright statements in the archives of one
// artifact. It is safe for concurrent use by independent extractions:
// the filter rule set is read-only after construction.
type Extractor struct {
	filters  *filters.Set
	resolver artifact.Resolver
	observer *observability.StandardObserver
}

// New creates an extractor that resolves archives through resolver and
// disqualifies boilerplate with rules. A nil rules falls back to the
// bundled filter rule set.
func New(resolver artifact.Resolver, rules *filters.Set) *Extractor {
	if rules == nil {
		rules = filters.Default()
	}
	return &Extractor{
		filters:  rules,
		resolver: resolver,
	}
}

// SetObserver sets the observability component
func (e *Extractor) SetObserver(observer *observability.StandardObserver) {
	e.observer = observer
}

// ExtractCopyright extracts copyright information for one artifact.
// Both the primary archive and, when resolvable, the paired source
// archive contribute candidates; notice-file matches take precedence
// over metadata matches, and distinct members of the chosen set are
// joined with "; " in first-encountered order. The second return is
// false when no copyright information was found; that is not an error.
func (e *Extractor) ExtractCopyright(desc artifact.Descriptor) (string, bool) {
	// Aggregator/parent artifacts have no binary payload to scan.
	if desc.Packaging == artifact.PackagingPom {
		return "", false
	}
	// Bundles are physically jars; resolve them as such.
	if desc.Packaging == artifact.PackagingBundle {
		desc = desc.WithPackaging(artifact.PackagingJar)
	}

	var finishStep func(bool, string)
	var finishTiming func(bool, int, map[string]interface{})
	if e.observer != nil {
		finishTiming = e.observer.StartTiming(componentName, "extract_copyright", desc.String())
		if e.observer.DebugObserver != nil {
			finishStep = e.observer.DebugObserver.StartStep(componentName, "extract_copyright", desc.String())
		}
	}

	textSet := newOrderedSet()
	metaSet := newOrderedSet()

	for _, candidate := range []artifact.Descriptor{
		desc,
		desc.WithPackaging(artifact.PackagingSource),
	} {
		textFound, metaFound := e.processArtifact(candidate)
		textSet.addAll(textFound)
		metaSet.addAll(metaFound)
	}

	// The preference decision is made once per artifact, after every
	// archive has contributed: manifests carry no explicit copyright
	// statement, so they are a fallback signal only.
	chosen := textSet
	if chosen.empty() {
		chosen = metaSet
	}

	if finishStep != nil {
		finishStep(true, chosen.join(copyrightSeparator))
	}
	// Finding nothing is still a successful extraction.
	if finishTiming != nil {
		finishTiming(true, len(chosen.members), nil)
	}
	if chosen.empty() {
		return "", false
	}
	return chosen.join(copyrightSeparator), true
}

// processArtifact resolves one archive candidate and scans its entries.
// Every failure is contained here: an unresolved artifact, an
// unreadable archive, or an unreadable entry contributes nothing
// further and the scan proceeds.
func (e *Extractor) processArtifact(desc artifact.Descriptor) (textFound, metaFound []string) {
	path, err := e.resolver.Resolve(desc)
	if err != nil {
		e.warn(desc.String(), err)
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		e.warn(desc.String(), err)
		return nil, nil
	}
	if !strings.HasSuffix(strings.ToLower(path), archiveExtension) {
		return nil, nil
	}

	err = archive.Walk(path, func(entry archive.Entry) error {
		switch classifyEntry(entry.Name) {
		case classNotice:
			textFound = append(textFound, e.scanEntry(path, entry, scanNoticeTextWith(e.filters))...)
		case classManifest:
			metaFound = append(metaFound, e.scanEntry(path, entry, scanManifestVendors)...)
		}
		return nil
	})
	if err != nil {
		e.warn(path, err)
	}
	return textFound, metaFound
}

// scanEntry opens one archive entry, runs scan over its content, and
// reports each resulting candidate. Failures are logged and the
// candidates found before the failure are kept.
func (e *Extractor) scanEntry(archivePath string, entry archive.Entry, scan func(io.Reader) ([]string, error)) []string {
	rc, err := entry.Open()
	if err != nil {
		e.warn(archivePath+"!"+entry.Name, err)
		return nil
	}
	defer rc.Close()

	found, err := scan(rc)
	if err != nil {
		e.warn(archivePath+"!"+entry.Name, err)
	}
	if e.observer != nil {
		for _, text := range found {
			e.observer.LogMatch(componentName, archivePath, entry.Name, text)
		}
	}
	return found
}

// scanNoticeTextWith binds the filter rule set into the notice scanner
// so it shares scanEntry's shape with the manifest scanner.
func scanNoticeTextWith(rules *filters.Set) func(io.Reader) ([]string, error) {
	return func(r io.Reader) ([]string, error) {
		return scanNoticeText(r, rules)
	}
}

func (e *Extractor) warn(target string, err error) {
	if e.observer != nil {
		e.observer.LogWarning(componentName, target, err)
	}
}

// orderedSet collapses exact duplicates while preserving the order in
// which members were first encountered, keeping the joined attribution
// deterministic for a given input.
type orderedSet struct {
	members []string
	seen    map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(value string) {
	if _, ok := s.seen[value]; ok {
		return
	}
	s.seen[value] = struct{}{}
	s.members = append(s.members, value)
}

func (s *orderedSet) addAll(values []string) {
	for _, value := range values {
		s.add(value)
	}
}

func (s *orderedSet) empty() bool {
	return len(s.members) == 0
}

func (s *orderedSet) join(separator string) string {
	return strings.Join(s.members, separator)
}
