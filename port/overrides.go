// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package port

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Overrides pins facts to explicit values, bypassing detection for
// the facts it covers. Each field is tri-state: nil leaves the fact
// to detection, a pointed-to value pins it. Overrides are trusted
// unconditionally; detection never runs for an overridden fact, so
// there is no notion of an override "conflicting" with what probing
// would have found.
type Overrides struct {
	RangeSync      *bool `json:"range_sync,omitempty"`
	FullFsync      *bool `json:"full_fsync,omitempty"`
	HardwareCRC    *bool `json:"hardware_crc,omitempty"`
	CompressionLib *bool `json:"compression_lib,omitempty"`
	BigEndian      *bool `json:"big_endian,omitempty"`
}

// IsZero reports whether no fact is overridden.
func (o Overrides) IsZero() bool {
	return o.RangeSync == nil && o.FullFsync == nil && o.HardwareCRC == nil &&
		o.CompressionLib == nil && o.BigEndian == nil
}

// Set pins a single fact by identifier. Used by the CLI's per-fact
// override flags.
func (o *Overrides) Set(fact Fact, value bool) {
	switch fact {
	case FactRangeSync:
		o.RangeSync = &value
	case FactFullFsync:
		o.FullFsync = &value
	case FactHardwareCRC:
		o.HardwareCRC = &value
	case FactCompressionLib:
		o.CompressionLib = &value
	case FactByteOrder:
		o.BigEndian = &value
	}
}

// Merged returns these overrides with the other set's pinned facts
// applied on top: wherever both pin a fact, other wins. Used to
// layer command-line overrides over an overrides file.
func (o Overrides) Merged(other Overrides) Overrides {
	merged := o
	if other.RangeSync != nil {
		merged.RangeSync = other.RangeSync
	}
	if other.FullFsync != nil {
		merged.FullFsync = other.FullFsync
	}
	if other.HardwareCRC != nil {
		merged.HardwareCRC = other.HardwareCRC
	}
	if other.CompressionLib != nil {
		merged.CompressionLib = other.CompressionLib
	}
	if other.BigEndian != nil {
		merged.BigEndian = other.BigEndian
	}
	return merged
}

// LoadOverrides reads an overrides file. The format is JSONC, JSON
// extended with // line comments, /* block comments */, and trailing
// commas, because overrides files are exactly the place operators
// record why a fact was pinned:
//
//	{
//	  // ZFS on this fleet lies about fdatasync; force the full path.
//	  "range_sync": false,
//	}
func LoadOverrides(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, fmt.Errorf("reading overrides: %w", err)
	}
	overrides, err := ParseOverrides(data)
	if err != nil {
		return Overrides{}, fmt.Errorf("overrides %s: %w", path, err)
	}
	return overrides, nil
}

// ParseOverrides parses overrides JSONC. Unknown keys are rejected:
// a typo like "big_endain" must not silently resolve the build with
// detection instead of the intended pin.
func ParseOverrides(data []byte) (Overrides, error) {
	stripped := jsonc.ToJSON(data)

	decoder := json.NewDecoder(bytes.NewReader(stripped))
	decoder.DisallowUnknownFields()

	var overrides Overrides
	if err := decoder.Decode(&overrides); err != nil {
		return Overrides{}, fmt.Errorf("parsing overrides: %w", err)
	}
	return overrides, nil
}
