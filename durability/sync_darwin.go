// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin

package durability

import (
	"os"

	"golang.org/x/sys/unix"
)

// dataSync falls back to fsync: Darwin has no fdatasync.
func dataSync(f *os.File) error {
	return f.Sync()
}

// barrierSync forces the write through the drive's cache with
// F_FULLFSYNC. Some filesystems (SMB, NFS) reject the fcntl; fall
// back to fsync there, which is the strongest flush they offer.
func barrierSync(f *os.File) error {
	if _, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0); err != nil {
		return f.Sync()
	}
	return nil
}
