// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

// Package checksum computes the CRC-32C (Castagnoli) block checksums
// the storage format uses for log records and table blocks.
//
// Stored checksums are masked: a CRC computed over data that embeds
// CRCs of its own verifies suspiciously well, so the stored form is
// the CRC rotated and offset by a constant. Mask before storing,
// Unmask after loading.
package checksum

import (
	"errors"
	"hash/crc32"
	"math/bits"

	"github.com/stratadb/keel/port"
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// maskDelta offsets rotated CRCs so a masked CRC never equals the
// CRC of the bytes it covers.
const maskDelta = 0xa282ead8

// Checksum returns the CRC-32C of data.
func Checksum(data []byte) uint32 {
	return crc32.Checksum(data, castagnoli)
}

// Extend returns the CRC-32C of the concatenation of the data that
// produced crc and the new data.
func Extend(crc uint32, data []byte) uint32 {
	return crc32.Update(crc, castagnoli, data)
}

// Mask converts a CRC to its stored form.
func Mask(crc uint32) uint32 {
	return bits.RotateLeft32(crc, 17) + maskDelta
}

// Unmask recovers a CRC from its stored form.
func Unmask(masked uint32) uint32 {
	return bits.RotateLeft32(masked-maskDelta, 15)
}

// Engine computes block checksums. The package functions are the
// software engine; Engine exists so code written against it picks up
// an accelerated implementation if one is ever selected.
type Engine interface {
	Checksum(data []byte) uint32
	Extend(crc uint32, data []byte) uint32
}

// ErrNoHardwareEngine is returned by New when the resolved facts
// select the hardware checksum path. No hardware engine is built in:
// the hardware fact defaults to false and only an explicit override
// sets it, so selecting it asks for code that does not exist.
var ErrNoHardwareEngine = errors.New("checksum: hardware crc32c engine not implemented")

type software struct{}

func (software) Checksum(data []byte) uint32 {
	return Checksum(data)
}

func (software) Extend(crc uint32, data []byte) uint32 {
	return Extend(crc, data)
}

// New selects the checksum engine for the resolved facts.
func New(facts port.Facts) (Engine, error) {
	if facts.HasHardwareCRC {
		return nil, ErrNoHardwareEngine
	}
	return software{}, nil
}
