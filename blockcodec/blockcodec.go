// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

// Package blockcodec compresses and decompresses storage blocks.
//
// Each stored block carries a one-byte codec tag. Which codecs a
// build offers is a resolved platform fact: when the compression
// libraries are not linked, the registry offers only None and writers
// store blocks raw, while readers still refuse compressed tags
// loudly rather than misread them.
package blockcodec

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/stratadb/keel/port"
)

// Codec identifies a block compression algorithm. The value is
// stored in block trailers (1 byte); changing an assignment breaks
// format compatibility.
type Codec uint8

const (
	// None stores the block uncompressed. Also the fallback when a
	// block fails to shrink.
	None Codec = 0

	// Snappy is the default write codec: modest ratios but fast
	// enough to be free next to the disk write.
	Snappy Codec = 1

	// Zstd trades CPU for ratio. Used for cold levels.
	Zstd Codec = 2

	// LZ4 block compression, between Snappy and Zstd on both axes.
	LZ4 Codec = 3
)

// String returns the codec's name as stored in configs and logs.
func (c Codec) String() string {
	switch c {
	case None:
		return "none"
	case Snappy:
		return "snappy"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// ParseCodec parses a codec name.
func ParseCodec(name string) (Codec, error) {
	switch name {
	case "none":
		return None, nil
	case "snappy":
		return Snappy, nil
	case "zstd":
		return Zstd, nil
	case "lz4":
		return LZ4, nil
	default:
		return 0, fmt.Errorf("unknown block codec: %q", name)
	}
}

// zstdEncoder and zstdDecoder are reused across calls; both are safe
// for concurrent use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		panic("blockcodec: zstd encoder initialization failed: " + err.Error())
	}

	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("blockcodec: zstd decoder initialization failed: " + err.Error())
	}
}

// Registry is the set of codecs a build offers, derived from the
// resolved compression-library fact.
type Registry struct {
	enabled map[Codec]bool
}

// NewRegistry builds the codec registry for the resolved facts. With
// the compression libraries linked, all codecs are offered; without,
// only None.
func NewRegistry(facts port.Facts) *Registry {
	enabled := map[Codec]bool{None: true}
	if facts.HasCompressionLib {
		enabled[Snappy] = true
		enabled[Zstd] = true
		enabled[LZ4] = true
	}
	return &Registry{enabled: enabled}
}

// Enabled reports whether the registry offers the codec.
func (r *Registry) Enabled(codec Codec) bool {
	return r.enabled[codec]
}

// Codecs returns the offered codecs in tag order.
func (r *Registry) Codecs() []Codec {
	var codecs []Codec
	for _, codec := range []Codec{None, Snappy, Zstd, LZ4} {
		if r.enabled[codec] {
			codecs = append(codecs, codec)
		}
	}
	return codecs
}

// Compress compresses a block with the given codec. For None the
// input is returned unchanged (no copy). Returns an incompressible
// error (see IsIncompressible) when the output would not be smaller
// than the input; callers then store the block raw under None.
func (r *Registry) Compress(codec Codec, data []byte) ([]byte, error) {
	if !r.enabled[codec] {
		return nil, fmt.Errorf("block codec %s is not offered by this build", codec)
	}

	switch codec {
	case None:
		return data, nil
	case Snappy:
		return compressSnappy(data)
	case Zstd:
		return compressZstd(data)
	case LZ4:
		return compressLZ4(data)
	default:
		return nil, fmt.Errorf("unsupported block codec: %d", uint8(codec))
	}
}

// Decompress decompresses a block. The uncompressedSize must match
// the original block length recorded in the trailer exactly; a
// mismatch is corruption and returns an error. Decompressing a codec
// the registry does not offer fails: a raw-only build reading a
// compressed block must say so rather than return garbage.
func (r *Registry) Decompress(codec Codec, compressed []byte, uncompressedSize int) ([]byte, error) {
	if !r.enabled[codec] {
		return nil, fmt.Errorf("block uses codec %s, which this build does not offer", codec)
	}

	switch codec {
	case None:
		if len(compressed) != uncompressedSize {
			return nil, fmt.Errorf("raw block: size %d does not match expected %d",
				len(compressed), uncompressedSize)
		}
		return compressed, nil
	case Snappy:
		return decompressSnappy(compressed, uncompressedSize)
	case Zstd:
		return decompressZstd(compressed, uncompressedSize)
	case LZ4:
		return decompressLZ4(compressed, uncompressedSize)
	default:
		return nil, fmt.Errorf("unsupported block codec: %d", uint8(codec))
	}
}

// CompressAuto compresses with the preferred codec, degrading to raw
// storage whenever that is the right answer: the codec is not offered
// by this build, or the block does not shrink. The returned codec is
// what the trailer must record.
func (r *Registry) CompressAuto(preferred Codec, data []byte) ([]byte, Codec, error) {
	if preferred == None || !r.enabled[preferred] {
		return data, None, nil
	}

	compressed, err := r.Compress(preferred, data)
	if err != nil {
		if IsIncompressible(err) {
			return data, None, nil
		}
		return nil, 0, err
	}
	return compressed, preferred, nil
}

// Snappy: block format (not the framed stream).

func compressSnappy(data []byte) ([]byte, error) {
	compressed := snappy.Encode(nil, data)
	if len(compressed) >= len(data) {
		return nil, errIncompressible
	}
	return compressed, nil
}

func decompressSnappy(compressed []byte, uncompressedSize int) ([]byte, error) {
	decoded, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("snappy decompress: %w", err)
	}
	if len(decoded) != uncompressedSize {
		return nil, fmt.Errorf("snappy decompress: got %d bytes, expected %d", len(decoded), uncompressedSize)
	}
	return decoded, nil
}

// Zstd: level 3, the default speed/ratio balance.

func compressZstd(data []byte) ([]byte, error) {
	compressed := zstdEncoder.EncodeAll(data, nil)
	if len(compressed) >= len(data) {
		return nil, errIncompressible
	}
	return compressed, nil
}

func decompressZstd(compressed []byte, uncompressedSize int) ([]byte, error) {
	destination := make([]byte, 0, uncompressedSize)
	result, err := zstdDecoder.DecodeAll(compressed, destination)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	if len(result) != uncompressedSize {
		return nil, fmt.Errorf("zstd decompress: got %d bytes, expected %d", len(result), uncompressedSize)
	}
	return result, nil
}

// LZ4: block mode.

func compressLZ4(data []byte) ([]byte, error) {
	bound := lz4.CompressBlockBound(len(data))
	destination := make([]byte, bound)

	written, err := lz4.CompressBlock(data, destination, nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}

	// CompressBlock returns 0 when it determines the data is
	// incompressible; a compressed size at or above the input is
	// equally not worth storing.
	if written == 0 || written >= len(data) {
		return nil, errIncompressible
	}

	return destination[:written], nil
}

func decompressLZ4(compressed []byte, uncompressedSize int) ([]byte, error) {
	destination := make([]byte, uncompressedSize)
	read, err := lz4.UncompressBlock(compressed, destination)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	if read != uncompressedSize {
		return nil, fmt.Errorf("lz4 decompress: got %d bytes, expected %d", read, uncompressedSize)
	}
	return destination, nil
}

// errIncompressible is returned when compressed output would not be
// smaller than the input. The caller should store the block raw.
var errIncompressible = errors.New("data is incompressible")

// IsIncompressible reports whether the error means data could not be
// compressed smaller than its original size.
func IsIncompressible(err error) bool {
	return errors.Is(err, errIncompressible)
}
