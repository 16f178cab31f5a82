// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux || freebsd || netbsd || openbsd || dragonfly || solaris

package durability

import (
	"os"

	"golang.org/x/sys/unix"
)

// dataSync flushes file data without forcing a metadata update.
func dataSync(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}

// barrierSync is a plain fsync: these platforms have no separate
// write-barrier fcntl, and fsync is specified to reach stable
// storage.
func barrierSync(f *os.File) error {
	return f.Sync()
}
