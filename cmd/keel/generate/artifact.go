// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"

	"github.com/stratadb/keel/port"
)

// Artifact describes one generated facts file: a Go source file of
// untyped boolean constants that downstream packages compile against,
// headed by the target it was resolved for and the fact-set
// fingerprint so staleness is detectable by inspection.
type Artifact struct {
	// Package is the package clause of the generated file.
	Package string

	// Constraint is the //go:build expression constraining the file,
	// empty for none.
	Constraint string

	// Target names what was resolved, for the file header.
	Target string

	// Facts are the resolved facts to freeze into constants.
	Facts port.Facts
}

// Render produces the generated source, gofmt-formatted.
func (a Artifact) Render() ([]byte, error) {
	if !token.IsIdentifier(a.Package) {
		return nil, fmt.Errorf("invalid package name %q", a.Package)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by keel generate. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "//\n")
	fmt.Fprintf(&buf, "// Target: %s\n", a.Target)
	fmt.Fprintf(&buf, "// Fingerprint: %s\n", a.Facts.Fingerprint())
	fmt.Fprintf(&buf, "\n")
	if a.Constraint != "" {
		fmt.Fprintf(&buf, "//go:build %s\n\n", a.Constraint)
	}
	fmt.Fprintf(&buf, "package %s\n\n", a.Package)
	fmt.Fprintf(&buf, "// Capability facts resolved for %s.\n", a.Facts.Platform)
	fmt.Fprintf(&buf, "const (\n")
	fmt.Fprintf(&buf, "\tHasRangeSync      = %t\n", a.Facts.HasRangeSync)
	fmt.Fprintf(&buf, "\tHasFullFsync      = %t\n", a.Facts.HasFullFsync)
	fmt.Fprintf(&buf, "\tHasHardwareCRC    = %t\n", a.Facts.HasHardwareCRC)
	fmt.Fprintf(&buf, "\tHasCompressionLib = %t\n", a.Facts.HasCompressionLib)
	fmt.Fprintf(&buf, "\tBigEndian         = %t\n", a.Facts.BigEndian)
	fmt.Fprintf(&buf, ")\n")

	source, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return source, nil
}
