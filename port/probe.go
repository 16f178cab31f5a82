// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package port

import "fmt"

// Primitive identifies an operating-system durability facility the
// resolver can probe a target for.
type Primitive int

const (
	// PrimitiveRangeSync is the data-only file sync call (fdatasync
	// where it exists): flushes written file data without forcing a
	// metadata flush on every call.
	PrimitiveRangeSync Primitive = iota

	// PrimitiveFullFsync is the whole-file flush control stronger
	// than an ordinary fsync (the F_FULLFSYNC fcntl on Apple
	// platforms): pushes data through the storage device's own write
	// cache.
	PrimitiveFullFsync
)

// String returns the primitive's name for diagnostics.
func (p Primitive) String() string {
	switch p {
	case PrimitiveRangeSync:
		return "range-sync"
	case PrimitiveFullFsync:
		return "full-fsync"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// ParsePrimitive parses a primitive from its string name.
func ParsePrimitive(name string) (Primitive, error) {
	switch name {
	case "range-sync":
		return PrimitiveRangeSync, nil
	case "full-fsync":
		return PrimitiveFullFsync, nil
	default:
		return 0, fmt.Errorf("unknown primitive %q", name)
	}
}

// Probe answers the three questions resolution asks of a target:
// which platform is it, which durability primitives does it expose,
// and which byte-order symbols do its headers declare. Implementations
// must be pure: the same probe answers the same questions the same
// way for its entire lifetime, which is what makes resolution
// idempotent.
type Probe interface {
	// Platform identifies the target operating system, or
	// PlatformUnknown when the target matches nothing the resolver
	// recognizes.
	Platform() Platform

	// HasPrimitive reports whether the target exposes the given
	// durability primitive.
	HasPrimitive(Primitive) bool

	// Symbols returns the byte-order symbol table the target's
	// headers declare. May be nil for targets without byte-order
	// headers.
	Symbols() SymbolSet
}

// tableProbe is a Probe backed by static data. Both the host probe
// and synthetic target probes are tableProbes; only the way the
// tables are filled differs.
type tableProbe struct {
	platform   Platform
	primitives map[Primitive]bool
	symbols    SymbolSet
}

func (t *tableProbe) Platform() Platform { return t.platform }

func (t *tableProbe) HasPrimitive(p Primitive) bool { return t.primitives[p] }

func (t *tableProbe) Symbols() SymbolSet { return t.symbols }

// platformPrimitives records which durability primitives each
// recognized platform declares. Range sync follows fdatasync
// availability: POSIX platforms declare it, Apple platforms and
// Windows do not. Full fsync is the Apple-only device flush.
var platformPrimitives = map[Platform][]Primitive{
	PlatformLinux:     {PrimitiveRangeSync},
	PlatformAndroid:   {PrimitiveRangeSync},
	PlatformFreeBSD:   {PrimitiveRangeSync},
	PlatformOpenBSD:   {PrimitiveRangeSync},
	PlatformNetBSD:    {PrimitiveRangeSync},
	PlatformDragonFly: {PrimitiveRangeSync},
	PlatformSolaris:   {PrimitiveRangeSync},
	PlatformIllumos:   {PrimitiveRangeSync},
	PlatformHPUX:      {PrimitiveRangeSync},
	PlatformDarwin:    {PrimitiveFullFsync},
	PlatformIOS:       {PrimitiveFullFsync},
}

// primitivesFor builds the primitive lookup for a platform.
func primitivesFor(platform Platform) map[Primitive]bool {
	available := make(map[Primitive]bool)
	for _, primitive := range platformPrimitives[platform] {
		available[primitive] = true
	}
	return available
}
