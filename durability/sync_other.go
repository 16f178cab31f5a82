// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux && !freebsd && !netbsd && !openbsd && !dragonfly && !solaris && !darwin

package durability

import "os"

// Both primitives degrade to fsync on platforms without fdatasync or
// a write-barrier fcntl (Windows, AIX, wasm). Select never chooses
// DataSync or FullFsync for these platforms unless an override forced
// the fact, and the degradation is still a correct flush.

func dataSync(f *os.File) error {
	return f.Sync()
}

func barrierSync(f *os.File) error {
	return f.Sync()
}
