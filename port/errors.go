// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package port

import "fmt"

// UnresolvableError reports that resolution cannot produce a value
// for a fact: the target matches no detection rule and no override
// supplies the value. This aborts resolution: for byte order, a
// guessed default would corrupt every multi-byte field a mismatched
// binary ever decodes, which is strictly worse than failing the
// build.
type UnresolvableError struct {
	Fact     Fact
	Platform Platform
}

func (e *UnresolvableError) Error() string {
	return fmt.Sprintf("cannot resolve %s for platform %q: no detection rule matches and no override was supplied",
		e.Fact, e.Platform)
}

// MissingSymbolError reports that the detection rule matched to the
// target requires a byte-order symbol the target does not declare.
// Seen in practice on targets probed without architecture knowledge,
// and on platforms (Windows) that have no byte-order headers at all.
type MissingSymbolError struct {
	Platform Platform
	Symbol   string
}

func (e *MissingSymbolError) Error() string {
	return fmt.Sprintf("byte-order probe inconclusive on %s: required symbol %s is not declared; supply a byte-order override",
		e.Platform, e.Symbol)
}
