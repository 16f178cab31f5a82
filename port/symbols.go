// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package port

// Byte-order symbol names as the platforms' own headers spell them.
// Detection rules match on these names verbatim: each platform family
// declares its byte order under a different spelling, and using the
// wrong family's name makes a probe silently inconclusive.
const (
	// Apple platforms declare byte order in <machine/endian.h> under
	// a __DARWIN_ prefix.
	SymbolDarwinByteOrder    = "__DARWIN_BYTE_ORDER"
	SymbolDarwinBigEndian    = "__DARWIN_BIG_ENDIAN"
	SymbolDarwinLittleEndian = "__DARWIN_LITTLE_ENDIAN"

	// BSD-family platforms and Android declare single-underscore
	// names in <sys/endian.h>. Solaris declares _BIG_ENDIAN or
	// _LITTLE_ENDIAN in <sys/isa_defs.h> as bare defined/undefined
	// markers rather than comparable values.
	SymbolByteOrder    = "_BYTE_ORDER"
	SymbolBigEndian    = "_BIG_ENDIAN"
	SymbolLittleEndian = "_LITTLE_ENDIAN"

	// The generic <endian.h> spelling used by glibc-style platforms
	// and assumed by the fallback detection rule.
	SymbolGenericByteOrder    = "__BYTE_ORDER"
	SymbolGenericBigEndian    = "__BIG_ENDIAN"
	SymbolGenericLittleEndian = "__LITTLE_ENDIAN"
)

// Conventional byte-order constants shared by every header family
// that defines comparable values: little is 1234, big is 4321.
// Detection rules never assume these numbers (they compare a
// target's symbols against each other), but probe synthesis uses
// them to reproduce what real headers declare.
const (
	littleEndianValue = 1234
	bigEndianValue    = 4321
)

// SymbolSet is the byte-order symbol table a target's headers
// declare: symbol name to integer value. Symbols that headers define
// without a meaningful value (the Solaris endianness markers) are
// recorded with value 1. A nil SymbolSet declares nothing.
type SymbolSet map[string]int64

// Defined reports whether the symbol is declared at all.
func (s SymbolSet) Defined(name string) bool {
	_, ok := s[name]
	return ok
}

// Lookup returns the symbol's value and whether it is declared.
func (s SymbolSet) Lookup(name string) (int64, bool) {
	value, ok := s[name]
	return value, ok
}

// synthesizeSymbols builds the symbol table a platform's headers
// would declare on a target with the given byte order. Platforms
// without byte-order headers (Windows, HP-UX, unrecognized targets)
// get nil: HP-UX resolves by fixed convention without symbols, and
// the others must resolve through overrides.
func synthesizeSymbols(platform Platform, bigEndian bool) SymbolSet {
	order := int64(littleEndianValue)
	if bigEndian {
		order = bigEndianValue
	}

	switch platform {
	case PlatformDarwin, PlatformIOS:
		return SymbolSet{
			SymbolDarwinByteOrder:    order,
			SymbolDarwinBigEndian:    bigEndianValue,
			SymbolDarwinLittleEndian: littleEndianValue,
		}

	case PlatformSolaris, PlatformIllumos:
		// isa_defs.h defines exactly one of the two markers.
		if bigEndian {
			return SymbolSet{SymbolBigEndian: 1}
		}
		return SymbolSet{SymbolLittleEndian: 1}

	case PlatformFreeBSD, PlatformOpenBSD, PlatformNetBSD, PlatformDragonFly, PlatformAndroid:
		return SymbolSet{
			SymbolByteOrder:    order,
			SymbolBigEndian:    bigEndianValue,
			SymbolLittleEndian: littleEndianValue,
		}

	case PlatformLinux:
		return SymbolSet{
			SymbolGenericByteOrder:    order,
			SymbolGenericBigEndian:    bigEndianValue,
			SymbolGenericLittleEndian: littleEndianValue,
		}
	}

	return nil
}
