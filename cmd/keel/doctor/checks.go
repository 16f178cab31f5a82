// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stratadb/keel/blockcodec"
	"github.com/stratadb/keel/checksum"
	"github.com/stratadb/keel/cmd/keel/cli/doctor"
	"github.com/stratadb/keel/durability"
	"github.com/stratadb/keel/lib/codec"
	"github.com/stratadb/keel/port"
)

func checkPlatform(probe port.Probe) doctor.Result {
	platform := probe.Platform()
	if platform == port.PlatformUnknown {
		return doctor.Warn("platform", "unrecognized; byte order must be pinned by override or manifest")
	}
	return doctor.Pass("platform", fmt.Sprintf("recognized as %s", platform))
}

func checkByteOrder(report port.Report) doctor.Result {
	for _, finding := range report.Findings {
		if finding.Fact != port.FactByteOrder {
			continue
		}
		order := "little-endian"
		if finding.Value {
			order = "big-endian"
		}
		message := fmt.Sprintf("%s (%s)", order, finding.Source)
		if finding.Detail != "" {
			message = fmt.Sprintf("%s (%s: %s)", order, finding.Source, finding.Detail)
		}
		return doctor.Pass("byte-order", message)
	}
	return doctor.Fail("byte-order", "no byte-order finding in the resolution report")
}

func checkPrimitive(probe port.Probe, primitive port.Primitive, fallback string) doctor.Result {
	if probe.HasPrimitive(primitive) {
		return doctor.Pass(primitive.String(), "kernel primitive available")
	}
	return doctor.Warn(primitive.String(), fallback)
}

func checkHardwareCRC(facts port.Facts) doctor.Result {
	if _, err := checksum.New(facts); err != nil {
		return doctor.Fail("hardware-crc", fmt.Sprintf("%v; drop the hardware-crc override", err))
	}
	if facts.HasHardwareCRC {
		return doctor.Pass("hardware-crc", "hardware engine claimed and available")
	}
	return doctor.Pass("hardware-crc", "software crc32c path selected")
}

func checkChecksum() doctor.Result {
	// Known answer from the iSCSI test vectors.
	const want = 0xE3069283
	got := checksum.Checksum([]byte("123456789"))
	if got != want {
		return doctor.Fail("checksum", fmt.Sprintf("crc32c(\"123456789\") = %#08x, want %#08x", got, want))
	}
	if checksum.Unmask(checksum.Mask(got)) != got {
		return doctor.Fail("checksum", "mask roundtrip does not restore the checksum")
	}
	return doctor.Pass("checksum", "crc32c known answer and mask roundtrip ok")
}

func checkCompression(facts port.Facts) doctor.Result {
	if !facts.HasCompressionLib {
		return doctor.Skip("compression", "codecs disabled for this fact set; blocks stay raw")
	}

	registry := blockcodec.NewRegistry(facts)
	payload := bytes.Repeat([]byte("strata block payload "), 256)
	var exercised []string
	for _, c := range registry.Codecs() {
		if c == blockcodec.None {
			continue
		}
		compressed, err := registry.Compress(c, payload)
		if err != nil {
			return doctor.Fail("compression", fmt.Sprintf("%s compress: %v", c, err))
		}
		restored, err := registry.Decompress(c, compressed, len(payload))
		if err != nil {
			return doctor.Fail("compression", fmt.Sprintf("%s decompress: %v", c, err))
		}
		if !bytes.Equal(restored, payload) {
			return doctor.Fail("compression", fmt.Sprintf("%s roundtrip corrupted the payload", c))
		}
		exercised = append(exercised, c.String())
	}
	return doctor.Pass("compression", fmt.Sprintf("%s roundtrips ok", strings.Join(exercised, ", ")))
}

func checkDurability(facts port.Facts) doctor.Result {
	mode := durability.Select(facts, durability.RequireFull)

	dir, err := os.MkdirTemp("", "keel-doctor-*")
	if err != nil {
		return doctor.Fail("durability", fmt.Sprintf("scratch dir: %v", err))
	}
	defer os.RemoveAll(dir)

	file, err := durability.Create(filepath.Join(dir, "scratch"), mode)
	if err != nil {
		return doctor.Fail("durability", fmt.Sprintf("scratch file: %v", err))
	}
	defer file.Close()

	if _, err := file.WriteString("keel doctor\n"); err != nil {
		return doctor.Fail("durability", fmt.Sprintf("write: %v", err))
	}
	if err := file.Sync(); err != nil {
		return doctor.Fail("durability", fmt.Sprintf("sync with mode %s: %v", mode, err))
	}
	return doctor.Pass("durability", fmt.Sprintf("flushed a scratch file with mode %s", mode))
}

func checkFingerprint(probe port.Probe, overrides port.Overrides) doctor.Result {
	first, err := port.Resolve(probe, overrides)
	if err != nil {
		return doctor.Fail("fingerprint", err.Error())
	}
	second, err := port.Resolve(probe, overrides)
	if err != nil {
		return doctor.Fail("fingerprint", err.Error())
	}
	fp := first.Fingerprint()
	if fp != second.Fingerprint() {
		return doctor.Fail("fingerprint", "resolution is not deterministic")
	}
	if !strings.HasPrefix(fp, "blake3:") {
		return doctor.Fail("fingerprint", fmt.Sprintf("malformed fingerprint %q", fp))
	}
	return doctor.Pass("fingerprint", fp)
}

func checkExpected(facts port.Facts, path string) doctor.Result {
	encoded, err := os.ReadFile(path)
	if err != nil {
		return doctor.Fail("expect", fmt.Sprintf("reading recorded facts: %v", err))
	}
	var recorded port.Facts
	if err := codec.Unmarshal(encoded, &recorded); err != nil {
		return doctor.Fail("expect", fmt.Sprintf("decoding recorded facts: %v", err))
	}
	if recorded != facts {
		return doctor.Fail("expect", fmt.Sprintf("facts drifted: recorded %s, resolved %s",
			recorded.Fingerprint(), facts.Fingerprint()))
	}
	return doctor.Pass("expect", "resolved facts match the recorded artifact")
}
