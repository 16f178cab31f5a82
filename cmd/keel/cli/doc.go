// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the keel CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree in
// cmd/keel/commands and dispatched via [Command.Execute], which handles
// flag parsing, subcommand routing, and structured help output with
// examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
//
// The package also provides the flag surface shared by the resolution
// commands:
//
//   - [TargetConfig]: selects what to resolve, the build host by
//     default, a canned platform/arch target via --target, or a YAML
//     target manifest via --target-file.
//
//   - [OverrideConfig]: collects fact overrides from a JSONC overrides
//     file (--overrides) and per-fact --set pins, with the --set flags
//     winning where both pin the same fact.
package cli
