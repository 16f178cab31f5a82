// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package durability

import (
	"fmt"
	"os"
)

// File wraps an *os.File so that Sync applies a selected flush mode
// instead of always calling fsync. All other file operations pass
// through unchanged.
type File struct {
	*os.File
	mode Mode
}

// Wrap applies a flush mode to an already-open file.
func Wrap(f *os.File, mode Mode) *File {
	return &File{File: f, mode: mode}
}

// Create creates or truncates a file for writing with the given
// flush mode.
func Create(path string, mode Mode) (*File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return Wrap(f, mode), nil
}

// Mode returns the flush mode Sync applies.
func (f *File) Mode() Mode {
	return f.mode
}

// Sync flushes the file according to its mode. Off is a no-op;
// DataSync and FullFsync dispatch to the platform primitive, falling
// back to a plain fsync where the platform lacks it.
func (f *File) Sync() error {
	switch f.mode {
	case Off:
		return nil
	case DataSync:
		return dataSync(f.File)
	case FullFsync:
		return barrierSync(f.File)
	default:
		return f.File.Sync()
	}
}

// SyncDir flushes a directory so that entry creates, deletes, and
// renames inside it are durable. Called after renaming a log or
// manifest into place. Platforms that reject fsync on directories
// report the error; crash-consistency there needs another mechanism.
func SyncDir(path string) error {
	dir, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening directory %s: %w", path, err)
	}
	defer dir.Close()
	if err := dir.Sync(); err != nil {
		return fmt.Errorf("syncing directory %s: %w", path, err)
	}
	return nil
}
