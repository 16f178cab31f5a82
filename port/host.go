// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package port

import (
	"encoding/binary"
	"runtime"
)

// Host returns the probe for the build host. The platform comes from
// the runtime, the primitive table from the platform knowledge the
// resolver carries, and the byte-order symbols are synthesized from
// the order the host actually stores integers in, so a host probe
// never disagrees with the machine it runs on.
//
// On hosts whose platform declares no byte-order headers (Windows,
// or a GOOS the resolver does not recognize) the symbol table is
// empty and byte order must come from an override, exactly as it
// would for that platform as a cross-compilation target.
func Host() Probe {
	return hostProbe(runtime.GOOS, hostBigEndian())
}

// hostProbe is the testable implementation of Host. Tests supply a
// GOOS name and byte order instead of the live runtime's.
func hostProbe(goos string, bigEndian bool) Probe {
	platform := ParsePlatform(goos)
	return &tableProbe{
		platform:   platform,
		primitives: primitivesFor(platform),
		symbols:    synthesizeSymbols(platform, bigEndian),
	}
}

// hostBigEndian witnesses the host's native integer layout: store
// 0x12 0x34 and read it back as a native uint16. Big-endian hosts
// read 0x1234.
func hostBigEndian() bool {
	return binary.NativeEndian.Uint16([]byte{0x12, 0x34}) == 0x1234
}
