// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package port

import "fmt"

// Fact identifies one of the five capability facts the resolver
// produces.
type Fact int

const (
	FactRangeSync Fact = iota
	FactFullFsync
	FactHardwareCRC
	FactCompressionLib
	FactByteOrder
)

// String returns the fact's kebab-case name, as used in override
// flags and diagnostics.
func (f Fact) String() string {
	switch f {
	case FactRangeSync:
		return "range-sync"
	case FactFullFsync:
		return "full-fsync"
	case FactHardwareCRC:
		return "hardware-crc"
	case FactCompressionLib:
		return "compression-lib"
	case FactByteOrder:
		return "byte-order"
	default:
		return fmt.Sprintf("unknown(%d)", int(f))
	}
}

// MarshalText implements encoding.TextMarshaler so facts serialize
// as their names.
func (f Fact) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// ParseFact parses a fact from its kebab-case name.
func ParseFact(name string) (Fact, error) {
	switch name {
	case "range-sync":
		return FactRangeSync, nil
	case "full-fsync":
		return FactFullFsync, nil
	case "hardware-crc":
		return FactHardwareCRC, nil
	case "compression-lib":
		return FactCompressionLib, nil
	case "byte-order":
		return FactByteOrder, nil
	default:
		return 0, fmt.Errorf("unknown fact %q", name)
	}
}

// AllFacts returns all five facts in presentation order.
func AllFacts() []Fact {
	return []Fact{
		FactRangeSync,
		FactFullFsync,
		FactHardwareCRC,
		FactCompressionLib,
		FactByteOrder,
	}
}

// Source records where a fact's resolved value came from.
type Source int

const (
	// SourceDefault marks facts with no detection rule that fell
	// back to their documented default.
	SourceDefault Source = iota

	// SourceDetected marks facts whose value came from probing the
	// target.
	SourceDetected

	// SourceOverride marks facts pinned by an explicit override.
	SourceOverride
)

// String returns the source's name.
func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceDetected:
		return "detected"
	case SourceOverride:
		return "override"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler so sources serialize
// as their names.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Facts is the resolved capability set for one target: the immutable
// configuration value the rest of the engine is handed. Facts are
// constructed only by [Resolve]; nothing mutates them afterward, and
// components receive them by value.
type Facts struct {
	// Platform is the target the facts were resolved for.
	Platform Platform `json:"platform"`

	// HasRangeSync reports a data-only file sync primitive.
	HasRangeSync bool `json:"has_range_sync"`

	// HasFullFsync reports a whole-file device-flush control
	// stronger than an ordinary fsync.
	HasFullFsync bool `json:"has_full_fsync"`

	// HasHardwareCRC reports a hardware-accelerated checksum path.
	// No detection rule exists for it: the value is false on every
	// platform unless an override pins it, and the checksum package
	// selects its software path accordingly.
	HasHardwareCRC bool `json:"has_hardware_crc"`

	// HasCompressionLib reports whether the block compression
	// codecs are linked in. Defaults to true absent an override.
	HasCompressionLib bool `json:"has_compression_lib"`

	// BigEndian reports the target's integer byte order.
	BigEndian bool `json:"big_endian"`
}

// Value returns the resolved value of a single fact.
func (f Facts) Value(fact Fact) bool {
	switch fact {
	case FactRangeSync:
		return f.HasRangeSync
	case FactFullFsync:
		return f.HasFullFsync
	case FactHardwareCRC:
		return f.HasHardwareCRC
	case FactCompressionLib:
		return f.HasCompressionLib
	case FactByteOrder:
		return f.BigEndian
	default:
		return false
	}
}

// Finding records how one fact resolved: the value, where it came
// from, and the rule detail behind a detected value.
type Finding struct {
	Fact   Fact   `json:"fact"`
	Value  bool   `json:"value"`
	Source Source `json:"source"`
	Detail string `json:"detail,omitempty"`
}

// Report is the full resolution record: the facts plus the per-fact
// finding trail, in [AllFacts] order.
type Report struct {
	Platform Platform  `json:"platform"`
	Facts    Facts     `json:"facts"`
	Findings []Finding `json:"findings"`
}
