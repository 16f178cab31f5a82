// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

// Package port resolves platform capability facts for the Strata
// storage engine's portability layer.
//
// Before the engine is built for a target, five facts about that
// target must be pinned down: whether a data-only file sync primitive
// exists, whether the platform exposes a device-flush control stronger
// than fsync, whether a hardware checksum path is available, whether
// the block compression library is linked, and what the target's
// integer byte order is. The rest of the engine consumes these facts
// as fixed configuration; it never re-detects them at runtime.
//
// # Resolution policy
//
// Each fact resolves independently under a strict precedence rule:
// an explicit override always wins, detection runs only when no
// override is present, and facts with no detection rule fall back to
// a documented default. Resolution is a pure function of the probe
// and the overrides: resolving the same inputs twice yields identical
// facts, and no fact's outcome depends on the order the others were
// resolved in.
//
// Byte order is the one fact that can fail to resolve. Capability
// facts degrade to safe defaults when nothing matches, because a
// wrong sync or compression flag only disables a feature. A wrong
// byte order corrupts every multi-byte field the engine ever decodes,
// so an unrecognized platform without an explicit byte-order override
// aborts resolution instead of guessing.
//
// # Probes
//
// A [Probe] describes a target: its platform identity, the durability
// primitives it exposes, and the byte-order symbols its system
// headers declare. [Host] probes the build host. [TargetProbe]
// synthesizes a probe for a named platform/architecture pair, and
// [TargetSpec] loads one from a YAML manifest for targets outside the
// built-in table.
//
// # Outputs
//
// [Resolve] produces the immutable [Facts] value the rest of the
// engine is handed. [Explain] produces the same facts plus a per-fact
// [Finding] trail recording each value's source, for diagnostics and
// the keel CLI.
package port
