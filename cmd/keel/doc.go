// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

// Keel is the capability resolution CLI for the Strata storage engine.
// It provides subcommands for inspecting resolved platform facts
// (resolve), freezing them into generated Go constants for a build
// (generate), and diagnosing a target's capability surface (doctor).
package main
