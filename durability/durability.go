// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

// Package durability selects and applies the flush strategy that makes
// writes survive a crash on the current platform.
//
// The write-ahead log and table builder ask for a durability
// requirement; Select maps that requirement onto the strongest
// primitive the platform's resolved facts say is actually available.
// Platforms without a data-only sync get the full sync. Platforms
// where the plain fsync does not reach the drive (macOS) get the
// barrier fcntl instead. The mapping never picks a primitive weaker
// than the caller asked for.
package durability

import (
	"github.com/stratadb/keel/port"
)

// Mode is a concrete flush strategy, ordered by strength.
type Mode uint8

const (
	// Off performs no flushing. Buffered data is lost on crash.
	Off Mode = iota
	// DataSync flushes file data but not metadata (fdatasync).
	DataSync
	// FullSync flushes file data and metadata (fsync).
	FullSync
	// FullFsync flushes through the drive's write cache
	// (fcntl F_FULLFSYNC). The only durable sync on macOS.
	FullFsync
)

var modeNames = map[Mode]string{
	Off:       "off",
	DataSync:  "datasync",
	FullSync:  "fullsync",
	FullFsync: "fullfsync",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "invalid"
}

// Requirement is what a caller needs from a flush, independent of
// which primitive delivers it.
type Requirement uint8

const (
	// RequireNone needs no durability (throwaway files, tests).
	RequireNone Requirement = iota
	// RequireData needs file contents durable; metadata such as
	// timestamps may lag. Sufficient for log segments whose size is
	// recorded elsewhere.
	RequireData
	// RequireFull needs contents and metadata durable through to
	// the drive.
	RequireFull
)

// Select maps a requirement onto the strongest mode the platform
// supports, per the resolved facts. Degradation only strengthens: a
// platform without the data-only primitive serves RequireData with a
// full sync, and a platform whose fsync does not reach the drive
// serves both with the barrier fcntl.
func Select(facts port.Facts, req Requirement) Mode {
	switch req {
	case RequireNone:
		return Off
	case RequireData:
		if facts.HasRangeSync {
			return DataSync
		}
	}
	if facts.HasFullFsync {
		return FullFsync
	}
	return FullSync
}
