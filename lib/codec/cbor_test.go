// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"testing"
)

// factsRecord mirrors the shape of a serialized facts record: json
// tags only, relying on fxamacker's fallback for CBOR field names.
type factsRecord struct {
	Platform  string `json:"platform"`
	BigEndian bool   `json:"big_endian"`
	Note      string `json:"note,omitempty"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := factsRecord{
		Platform:  "freebsd",
		BigEndian: false,
		Note:      "resolved from arch table",
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if len(data) == 0 {
		t.Fatal("Marshal produced empty output")
	}

	var decoded factsRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if decoded != original {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	record := factsRecord{Platform: "solaris", BigEndian: true}

	first, err := Marshal(record)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}

	second, err := Marshal(record)
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding violated: %x != %x", first, second)
	}
}

func TestJSONTagNamesUsedAsKeys(t *testing.T) {
	// Field names in the encoded map must come from the json tags,
	// not the Go field names: a record written by one build of the
	// tooling must decode under another.
	data, err := Marshal(factsRecord{Platform: "netbsd"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var generic map[string]any
	if err := Unmarshal(data, &generic); err != nil {
		t.Fatalf("Unmarshal into map: %v", err)
	}

	if _, ok := generic["platform"]; !ok {
		t.Errorf("encoded keys %v missing %q", generic, "platform")
	}
	if _, ok := generic["big_endian"]; !ok {
		t.Errorf("encoded keys %v missing %q", generic, "big_endian")
	}
}

func TestOmitemptyRespected(t *testing.T) {
	withNote := factsRecord{Platform: "linux", Note: "pinned"}
	withoutNote := factsRecord{Platform: "linux"}

	dataWith, err := Marshal(withNote)
	if err != nil {
		t.Fatal(err)
	}
	dataWithout, err := Marshal(withoutNote)
	if err != nil {
		t.Fatal(err)
	}

	if len(dataWithout) >= len(dataWith) {
		t.Errorf("omitempty not effective: without=%d bytes, with=%d bytes",
			len(dataWithout), len(dataWith))
	}
}

func TestUnmarshalInvalidCBOR(t *testing.T) {
	var record factsRecord
	err := Unmarshal([]byte{0xFF, 0xFE, 0xFD}, &record)
	if err == nil {
		t.Error("Unmarshal should reject invalid CBOR")
	}
}

func TestUnknownFieldsIgnored(t *testing.T) {
	// Forward compatibility: a record written by newer tooling with
	// extra fields must still decode.
	data, err := Marshal(map[string]any{
		"platform":     "openbsd",
		"big_endian":   false,
		"future_field": int64(9),
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded factsRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Platform != "openbsd" {
		t.Errorf("Platform = %q, want %q", decoded.Platform, "openbsd")
	}
}

func BenchmarkMarshal(b *testing.B) {
	record := factsRecord{Platform: "freebsd", Note: "resolved from arch table"}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Marshal(record)
	}
}
