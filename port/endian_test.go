// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package port

import (
	"errors"
	"testing"
)

// resolveOrder resolves only the byte-order fact for a hand-built
// symbol table, failing the test on setup-level errors.
func resolveOrder(t *testing.T, platform Platform, symbols SymbolSet) bool {
	t.Helper()
	facts, err := Resolve(probeWith(platform, nil, symbols), Overrides{})
	if err != nil {
		t.Fatalf("Resolve(%s): %v", platform, err)
	}
	return facts.BigEndian
}

func TestDarwinByteOrder(t *testing.T) {
	little := SymbolSet{
		SymbolDarwinByteOrder:    littleEndianValue,
		SymbolDarwinBigEndian:    bigEndianValue,
		SymbolDarwinLittleEndian: littleEndianValue,
	}
	big := SymbolSet{
		SymbolDarwinByteOrder:    bigEndianValue,
		SymbolDarwinBigEndian:    bigEndianValue,
		SymbolDarwinLittleEndian: littleEndianValue,
	}

	if got := resolveOrder(t, PlatformDarwin, little); got {
		t.Error("darwin little-endian symbols resolved BigEndian = true, want false")
	}
	if got := resolveOrder(t, PlatformDarwin, big); !got {
		t.Error("darwin big-endian symbols resolved BigEndian = false, want true")
	}
	if got := resolveOrder(t, PlatformIOS, little); got {
		t.Error("ios little-endian symbols resolved BigEndian = true, want false")
	}
}

func TestDarwinPartialSymbolsInconclusive(t *testing.T) {
	// Both __DARWIN_ symbols are required. A table with only one is
	// inconclusive, never assumed little-endian.
	tests := []struct {
		name        string
		symbols     SymbolSet
		wantMissing string
	}{
		{
			name:        "no symbols",
			symbols:     nil,
			wantMissing: SymbolDarwinByteOrder,
		},
		{
			name:        "byte order only",
			symbols:     SymbolSet{SymbolDarwinByteOrder: littleEndianValue},
			wantMissing: SymbolDarwinBigEndian,
		},
		{
			name:        "big endian only",
			symbols:     SymbolSet{SymbolDarwinBigEndian: bigEndianValue},
			wantMissing: SymbolDarwinByteOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(probeWith(PlatformDarwin, nil, tt.symbols), Overrides{})
			var missing *MissingSymbolError
			if !errors.As(err, &missing) {
				t.Fatalf("Resolve error = %v, want *MissingSymbolError", err)
			}
			if missing.Symbol != tt.wantMissing {
				t.Errorf("missing symbol = %s, want %s", missing.Symbol, tt.wantMissing)
			}
			if missing.Platform != PlatformDarwin {
				t.Errorf("missing symbol platform = %s, want darwin", missing.Platform)
			}
		})
	}
}

func TestSolarisDefinedCheck(t *testing.T) {
	// Solaris byte order is a defined-check on _BIG_ENDIAN, never a
	// value comparison, and never inconclusive: an empty table means
	// little-endian.
	if got := resolveOrder(t, PlatformSolaris, SymbolSet{SymbolBigEndian: 1}); !got {
		t.Error("solaris with _BIG_ENDIAN defined resolved BigEndian = false, want true")
	}
	if got := resolveOrder(t, PlatformSolaris, SymbolSet{SymbolLittleEndian: 1}); got {
		t.Error("solaris with _LITTLE_ENDIAN defined resolved BigEndian = true, want false")
	}
	if got := resolveOrder(t, PlatformSolaris, nil); got {
		t.Error("solaris with no symbols resolved BigEndian = true, want false")
	}
	if got := resolveOrder(t, PlatformIllumos, SymbolSet{SymbolBigEndian: 1}); !got {
		t.Error("illumos with _BIG_ENDIAN defined resolved BigEndian = false, want true")
	}
}

func TestBSDFamilyByteOrder(t *testing.T) {
	bsdPlatforms := []Platform{
		PlatformFreeBSD, PlatformOpenBSD, PlatformNetBSD, PlatformDragonFly,
	}

	for _, platform := range bsdPlatforms {
		t.Run(platform.String(), func(t *testing.T) {
			big := SymbolSet{
				SymbolByteOrder:    bigEndianValue,
				SymbolBigEndian:    bigEndianValue,
				SymbolLittleEndian: littleEndianValue,
			}
			little := SymbolSet{
				SymbolByteOrder:    littleEndianValue,
				SymbolBigEndian:    bigEndianValue,
				SymbolLittleEndian: littleEndianValue,
			}

			if got := resolveOrder(t, platform, big); !got {
				t.Error("_BYTE_ORDER == _BIG_ENDIAN resolved BigEndian = false, want true")
			}
			if got := resolveOrder(t, platform, little); got {
				t.Error("_BYTE_ORDER != _BIG_ENDIAN resolved BigEndian = true, want false")
			}

			_, err := Resolve(probeWith(platform, nil, SymbolSet{SymbolByteOrder: littleEndianValue}), Overrides{})
			var missing *MissingSymbolError
			if !errors.As(err, &missing) {
				t.Fatalf("partial symbols: error = %v, want *MissingSymbolError", err)
			}
			if missing.Symbol != SymbolBigEndian {
				t.Errorf("missing symbol = %s, want %s", missing.Symbol, SymbolBigEndian)
			}
		})
	}
}

func TestHPUXAlwaysBigEndian(t *testing.T) {
	// HP-UX resolves big-endian by platform convention. Even a probe
	// declaring little-endian symbols does not shake it: the rule
	// consults no symbols at all.
	contradictory := SymbolSet{
		SymbolByteOrder:           littleEndianValue,
		SymbolBigEndian:           bigEndianValue,
		SymbolGenericByteOrder:    littleEndianValue,
		SymbolGenericBigEndian:    bigEndianValue,
		SymbolGenericLittleEndian: littleEndianValue,
	}

	if got := resolveOrder(t, PlatformHPUX, contradictory); !got {
		t.Error("hpux resolved BigEndian = false, want true regardless of symbols")
	}
	if got := resolveOrder(t, PlatformHPUX, nil); !got {
		t.Error("hpux with no symbols resolved BigEndian = false, want true")
	}
}

func TestAndroidUsesUnderscoreSymbols(t *testing.T) {
	// Android's headers declare _BYTE_ORDER; historical NDK releases
	// shipped the generic __BYTE_ORDER broken. The rule must read the
	// underscore name and must not fall back to the generic one.
	underscore := SymbolSet{
		SymbolByteOrder:    littleEndianValue,
		SymbolBigEndian:    bigEndianValue,
		SymbolLittleEndian: littleEndianValue,
	}
	if got := resolveOrder(t, PlatformAndroid, underscore); got {
		t.Error("android underscore symbols resolved BigEndian = true, want false")
	}

	// A probe that only declares the generic spelling is inconclusive
	// on android; silently consulting __BYTE_ORDER here is exactly
	// the historical bug.
	genericOnly := SymbolSet{
		SymbolGenericByteOrder:    littleEndianValue,
		SymbolGenericBigEndian:    bigEndianValue,
		SymbolGenericLittleEndian: littleEndianValue,
	}
	_, err := Resolve(probeWith(PlatformAndroid, nil, genericOnly), Overrides{})
	var missing *MissingSymbolError
	if !errors.As(err, &missing) {
		t.Fatalf("generic-only symbols: error = %v, want *MissingSymbolError", err)
	}
	if missing.Symbol != SymbolByteOrder {
		t.Errorf("missing symbol = %s, want %s", missing.Symbol, SymbolByteOrder)
	}
}

func TestGenericFallback(t *testing.T) {
	big := SymbolSet{
		SymbolGenericByteOrder:    bigEndianValue,
		SymbolGenericBigEndian:    bigEndianValue,
		SymbolGenericLittleEndian: littleEndianValue,
	}
	little := SymbolSet{
		SymbolGenericByteOrder:    littleEndianValue,
		SymbolGenericBigEndian:    bigEndianValue,
		SymbolGenericLittleEndian: littleEndianValue,
	}

	if got := resolveOrder(t, PlatformLinux, big); !got {
		t.Error("linux __BYTE_ORDER == __BIG_ENDIAN resolved BigEndian = false, want true")
	}
	if got := resolveOrder(t, PlatformLinux, little); got {
		t.Error("linux __BYTE_ORDER != __BIG_ENDIAN resolved BigEndian = true, want false")
	}
}

func TestSpecificRuleBeatsGeneric(t *testing.T) {
	// A darwin probe that also declares generic symbols with the
	// opposite answer: the darwin arm must win the dispatch.
	symbols := SymbolSet{
		SymbolDarwinByteOrder:     bigEndianValue,
		SymbolDarwinBigEndian:     bigEndianValue,
		SymbolGenericByteOrder:    littleEndianValue,
		SymbolGenericBigEndian:    bigEndianValue,
		SymbolGenericLittleEndian: littleEndianValue,
	}

	if got := resolveOrder(t, PlatformDarwin, symbols); !got {
		t.Error("darwin rule lost to generic fallback: BigEndian = false, want true")
	}
}

func TestWindowsRequiresOverride(t *testing.T) {
	// Windows is a recognized platform with no byte-order headers:
	// the generic arm matches and finds nothing, so resolution needs
	// an explicit pin, same as the engine's real build there.
	_, err := Resolve(TargetProbe(PlatformWindows, ArchAMD64), Overrides{})
	var missing *MissingSymbolError
	if !errors.As(err, &missing) {
		t.Fatalf("Resolve error = %v, want *MissingSymbolError", err)
	}
	if missing.Symbol != SymbolGenericByteOrder {
		t.Errorf("missing symbol = %s, want %s", missing.Symbol, SymbolGenericByteOrder)
	}

	facts, err := Resolve(TargetProbe(PlatformWindows, ArchAMD64), Overrides{
		BigEndian: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Resolve with override: %v", err)
	}
	if facts.BigEndian {
		t.Error("BigEndian = true, want false from override")
	}
}
