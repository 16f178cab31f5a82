// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package port

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseOverrides(t *testing.T) {
	const doc = `{
	// The fleet's NFS mounts ignore sync_file_range entirely.
	"range_sync": false,
	/* pinned after the s390x migration */
	"big_endian": true,
}`
	overrides, err := ParseOverrides([]byte(doc))
	if err != nil {
		t.Fatalf("ParseOverrides: %v", err)
	}
	if overrides.RangeSync == nil || *overrides.RangeSync {
		t.Errorf("RangeSync = %v, want pinned false", overrides.RangeSync)
	}
	if overrides.BigEndian == nil || !*overrides.BigEndian {
		t.Errorf("BigEndian = %v, want pinned true", overrides.BigEndian)
	}
	if overrides.FullFsync != nil || overrides.HardwareCRC != nil || overrides.CompressionLib != nil {
		t.Error("facts not named in the file must stay unpinned")
	}
}

func TestParseOverridesRejectsUnknownKeys(t *testing.T) {
	if _, err := ParseOverrides([]byte(`{"big_endain": true}`)); err == nil {
		t.Error("a misspelled key must not parse")
	}
}

func TestParseOverridesMalformed(t *testing.T) {
	if _, err := ParseOverrides([]byte(`{"range_sync": "yes"}`)); err == nil {
		t.Error("non-boolean value must not parse")
	}
	if _, err := ParseOverrides([]byte(`{`)); err == nil {
		t.Error("truncated document must not parse")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.jsonc")
	if err := os.WriteFile(path, []byte(`{"compression_lib": false}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	overrides, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	if overrides.CompressionLib == nil || *overrides.CompressionLib {
		t.Errorf("CompressionLib = %v, want pinned false", overrides.CompressionLib)
	}

	if _, err := LoadOverrides(filepath.Join(t.TempDir(), "absent.jsonc")); err == nil {
		t.Error("LoadOverrides on a missing file should fail")
	}
}

func TestOverridesMerged(t *testing.T) {
	base := Overrides{
		RangeSync: boolPtr(true),
		BigEndian: boolPtr(false),
	}
	layer := Overrides{
		BigEndian: boolPtr(true),
		FullFsync: boolPtr(false),
	}

	merged := base.Merged(layer)
	if merged.RangeSync == nil || !*merged.RangeSync {
		t.Error("base pin should survive when the layer leaves it alone")
	}
	if merged.BigEndian == nil || !*merged.BigEndian {
		t.Error("layer pin should win where both pin a fact")
	}
	if merged.FullFsync == nil || *merged.FullFsync {
		t.Error("layer-only pin should carry through")
	}
	if merged.HardwareCRC != nil || merged.CompressionLib != nil {
		t.Error("facts pinned by neither side must stay unpinned")
	}

	// Merging must not mutate either input.
	if *base.BigEndian {
		t.Error("Merged mutated the receiver")
	}
}

func TestOverridesSet(t *testing.T) {
	var overrides Overrides
	if !overrides.IsZero() {
		t.Fatal("zero Overrides should report IsZero")
	}

	for _, fact := range AllFacts() {
		overrides.Set(fact, true)
	}
	if overrides.IsZero() {
		t.Fatal("Set should have pinned every fact")
	}
	for _, pin := range []*bool{
		overrides.RangeSync,
		overrides.FullFsync,
		overrides.HardwareCRC,
		overrides.CompressionLib,
		overrides.BigEndian,
	} {
		if pin == nil || !*pin {
			t.Errorf("pin = %v, want true", pin)
		}
	}
}

func TestOverridesSetValuesIndependent(t *testing.T) {
	// Set must capture each value, not share a pointer across calls.
	var overrides Overrides
	overrides.Set(FactRangeSync, true)
	overrides.Set(FactFullFsync, false)
	if !*overrides.RangeSync {
		t.Error("RangeSync pin changed after a later Set")
	}
	if *overrides.FullFsync {
		t.Error("FullFsync = true, want false")
	}
}
