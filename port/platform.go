// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package port

import (
	"fmt"
	"strings"
)

// Platform identifies a target operating system from the closed set
// the resolver knows detection rules for. The zero value is
// PlatformUnknown: a recognized input, not an error; resolution for
// an unknown platform succeeds only where overrides cover the facts
// that detection would have supplied.
type Platform int

const (
	PlatformUnknown Platform = iota
	PlatformLinux
	PlatformAndroid
	PlatformDarwin
	PlatformIOS
	PlatformFreeBSD
	PlatformOpenBSD
	PlatformNetBSD
	PlatformDragonFly
	PlatformSolaris
	PlatformIllumos
	PlatformHPUX
	PlatformWindows
)

// platformNames maps each platform to its canonical lowercase name.
// Names follow GOOS spelling where a GOOS value exists; hpux has no
// Go port but remains a resolvable engine target.
var platformNames = map[Platform]string{
	PlatformLinux:     "linux",
	PlatformAndroid:   "android",
	PlatformDarwin:    "darwin",
	PlatformIOS:       "ios",
	PlatformFreeBSD:   "freebsd",
	PlatformOpenBSD:   "openbsd",
	PlatformNetBSD:    "netbsd",
	PlatformDragonFly: "dragonfly",
	PlatformSolaris:   "solaris",
	PlatformIllumos:   "illumos",
	PlatformHPUX:      "hpux",
	PlatformWindows:   "windows",
}

// String returns the canonical lowercase platform name, or "unknown".
func (p Platform) String() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler so platforms
// serialize as their names in JSON, YAML, and CBOR output.
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognized
// names decode to PlatformUnknown without error, mirroring
// [ParsePlatform].
func (p *Platform) UnmarshalText(text []byte) error {
	*p = ParsePlatform(string(text))
	return nil
}

// ParsePlatform maps a GOOS-style name to its Platform. Names outside
// the recognized set map to PlatformUnknown: an unrecognized target
// is a legitimate resolver input whose failure mode (no detection
// rule, override required) is part of the resolution contract, so
// parsing does not reject it up front.
func ParsePlatform(name string) Platform {
	for platform, platformName := range platformNames {
		if platformName == name {
			return platform
		}
	}
	return PlatformUnknown
}

// Platforms returns every recognized platform, in a stable order.
func Platforms() []Platform {
	return []Platform{
		PlatformLinux,
		PlatformAndroid,
		PlatformDarwin,
		PlatformIOS,
		PlatformFreeBSD,
		PlatformOpenBSD,
		PlatformNetBSD,
		PlatformDragonFly,
		PlatformSolaris,
		PlatformIllumos,
		PlatformHPUX,
		PlatformWindows,
	}
}

// Arch identifies a target processor architecture by its GOARCH-style
// name. The resolver only consults an architecture for its byte
// order, when synthesizing the header symbols a target of that
// architecture would declare.
type Arch int

const (
	ArchUnknown Arch = iota
	Arch386
	ArchAMD64
	ArchARM
	ArchARM64
	ArchLoong64
	ArchMIPS
	ArchMIPSLE
	ArchMIPS64
	ArchMIPS64LE
	ArchPPC64
	ArchPPC64LE
	ArchRISCV64
	ArchS390X
	ArchSPARC64
	ArchWasm
)

// archInfo records the name and byte order of each architecture.
var archInfo = map[Arch]struct {
	name      string
	bigEndian bool
}{
	Arch386:      {"386", false},
	ArchAMD64:    {"amd64", false},
	ArchARM:      {"arm", false},
	ArchARM64:    {"arm64", false},
	ArchLoong64:  {"loong64", false},
	ArchMIPS:     {"mips", true},
	ArchMIPSLE:   {"mipsle", false},
	ArchMIPS64:   {"mips64", true},
	ArchMIPS64LE: {"mips64le", false},
	ArchPPC64:    {"ppc64", true},
	ArchPPC64LE:  {"ppc64le", false},
	ArchRISCV64:  {"riscv64", false},
	ArchS390X:    {"s390x", true},
	ArchSPARC64:  {"sparc64", true},
	ArchWasm:     {"wasm", false},
}

// String returns the GOARCH-style architecture name, or "unknown".
func (a Arch) String() string {
	if info, ok := archInfo[a]; ok {
		return info.name
	}
	return "unknown"
}

// BigEndian reports whether the architecture stores integers
// big-endian. Meaningless for ArchUnknown, which callers must handle
// before asking.
func (a Arch) BigEndian() bool {
	return archInfo[a].bigEndian
}

// ParseArch maps a GOARCH-style name to its Arch. Unlike platforms,
// an unrecognized architecture is an error: there is no degraded
// resolution path for "some architecture", only for "no architecture
// given", which callers express with ArchUnknown directly.
func ParseArch(name string) (Arch, error) {
	for arch, info := range archInfo {
		if info.name == name {
			return arch, nil
		}
	}
	return ArchUnknown, fmt.Errorf("unknown architecture %q", name)
}

// ParseTarget splits an "os/arch" target string into its platform and
// architecture. The architecture part is optional: "hpux" alone is a
// valid target for platforms whose byte order does not depend on
// architecture. The platform part follows [ParsePlatform] semantics
// and never fails; a misspelled architecture does.
func ParseTarget(target string) (Platform, Arch, error) {
	osName, archName, _ := strings.Cut(target, "/")

	platform := ParsePlatform(osName)
	if archName == "" {
		return platform, ArchUnknown, nil
	}

	arch, err := ParseArch(archName)
	if err != nil {
		return platform, ArchUnknown, fmt.Errorf("target %q: %w", target, err)
	}
	return platform, arch, nil
}
