// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire encodes the fixed-width and varint fields of the
// storage format.
//
// The on-disk order is little-endian regardless of host. Fixed-field
// decoding has two implementations, a direct native load and a native
// load plus byte swap, and the resolved byte-order fact selects the
// one that matches the host, so the branch is taken once at startup
// rather than per field.
package wire

import (
	"encoding/binary"
	"errors"
	"math"
	"math/bits"

	"github.com/stratadb/keel/port"
)

// Maximum encoded lengths of the varint forms.
const (
	MaxVarintLen32 = 5
	MaxVarintLen64 = 10
)

var (
	// ErrTruncated means the buffer ended inside an encoded field.
	ErrTruncated = errors.New("wire: truncated field")
	// ErrOverflow means a varint does not fit the requested width.
	ErrOverflow = errors.New("wire: varint overflows")
)

// PutFixed32 stores v at the start of dst in canonical order. dst
// must be at least 4 bytes.
func PutFixed32(dst []byte, v uint32) {
	binary.LittleEndian.PutUint32(dst, v)
}

// PutFixed64 stores v at the start of dst in canonical order. dst
// must be at least 8 bytes.
func PutFixed64(dst []byte, v uint64) {
	binary.LittleEndian.PutUint64(dst, v)
}

// AppendFixed32 appends the canonical encoding of v to dst.
func AppendFixed32(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

// AppendFixed64 appends the canonical encoding of v to dst.
func AppendFixed64(dst []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(dst, v)
}

// Fixed32 reads a canonical 4-byte field. src must be at least 4
// bytes.
func Fixed32(src []byte) uint32 {
	return binary.LittleEndian.Uint32(src)
}

// Fixed64 reads a canonical 8-byte field. src must be at least 8
// bytes.
func Fixed64(src []byte) uint64 {
	return binary.LittleEndian.Uint64(src)
}

// AppendVarint32 appends the varint encoding of v to dst (at most
// MaxVarintLen32 bytes).
func AppendVarint32(dst []byte, v uint32) []byte {
	return AppendVarint64(dst, uint64(v))
}

// AppendVarint64 appends the varint encoding of v to dst (at most
// MaxVarintLen64 bytes): 7 bits per byte, least significant group
// first, high bit set on all but the last byte.
func AppendVarint64(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// VarintLen returns the encoded length of v in bytes.
func VarintLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// Varint32 decodes a varint field that must fit in 32 bits. Returns
// the value and the number of bytes consumed.
func Varint32(src []byte) (uint32, int, error) {
	v, n, err := Varint64(src)
	if err != nil {
		return 0, 0, err
	}
	if v > math.MaxUint32 {
		return 0, 0, ErrOverflow
	}
	return uint32(v), n, nil
}

// Varint64 decodes a varint field. Returns the value and the number
// of bytes consumed.
func Varint64(src []byte) (uint64, int, error) {
	var v uint64
	for i, shift := 0, 0; i < len(src); i, shift = i+1, shift+7 {
		if i == MaxVarintLen64 {
			return 0, 0, ErrOverflow
		}
		b := src[i]
		if b < 0x80 {
			// The tenth byte carries the top bit of a 64-bit value;
			// anything above 1 has shifted past the width.
			if i == MaxVarintLen64-1 && b > 1 {
				return 0, 0, ErrOverflow
			}
			return v | uint64(b)<<shift, i + 1, nil
		}
		v |= uint64(b&0x7f) << shift
	}
	return 0, 0, ErrTruncated
}

// ByteOrder returns the host's native integer order per the resolved
// facts.
func ByteOrder(facts port.Facts) binary.ByteOrder {
	if facts.BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Swapped reports whether native-order loads of canonical fields need
// a byte swap on the resolved host.
func Swapped(facts port.Facts) bool {
	return facts.BigEndian
}

// Uint32Decoder returns the fixed32 decoder for the resolved host:
// the direct native load when the host order matches the canonical
// order, the swapping load when it does not. On the host the facts
// describe, the returned function reads canonical fields correctly;
// the selection happens once instead of branching per field.
func Uint32Decoder(facts port.Facts) func([]byte) uint32 {
	if facts.BigEndian {
		return swapUint32
	}
	return nativeUint32
}

// Uint64Decoder is the fixed64 analogue of Uint32Decoder.
func Uint64Decoder(facts port.Facts) func([]byte) uint64 {
	if facts.BigEndian {
		return swapUint64
	}
	return nativeUint64
}

func nativeUint32(src []byte) uint32 {
	return binary.NativeEndian.Uint32(src)
}

func swapUint32(src []byte) uint32 {
	return bits.ReverseBytes32(binary.NativeEndian.Uint32(src))
}

func nativeUint64(src []byte) uint64 {
	return binary.NativeEndian.Uint64(src)
}

func swapUint64(src []byte) uint64 {
	return bits.ReverseBytes64(binary.NativeEndian.Uint64(src))
}
