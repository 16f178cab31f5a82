// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides Keel's standard CBOR encoding configuration.
//
// Keel serializes in two formats with a clear boundary:
//
//   - JSON for human-facing surfaces: CLI --json output and the JSONC
//     overrides files operators edit.
//   - CBOR for machine artifacts: the canonical facts records that
//     build tooling stores and compares across runs.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys, smallest integer encoding, no indefinite-length
// items. Same logical data always produces identical bytes, which is
// what makes a facts record hashable and diffable. A fact set encoded
// today and the same fact set encoded next year are byte-identical.
//
// Types carry `json` tags only: fxamacker/cbor v2 reads them as
// fallback when `cbor` tags are absent, so one tag controls field
// naming for both formats, and every serialized type remains usable
// in CLI --json output.
package codec
