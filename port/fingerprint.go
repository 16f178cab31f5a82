// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package port

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/stratadb/keel/lib/codec"
)

// factsDomainKey is the BLAKE3 keyed-hashing domain for fact-set
// fingerprints. The bytes are the ASCII domain name zero-padded to 32
// bytes: readable in hex dumps, and changing it invalidates every
// recorded fingerprint.
var factsDomainKey = [32]byte{
	's', 't', 'r', 'a', 't', 'a', '.', 'k', 'e', 'e', 'l', '.',
	'f', 'a', 'c', 't', 's', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Fingerprint returns a stable identifier for the fact set: the keyed
// BLAKE3 digest of its canonical CBOR encoding, rendered as
// "blake3:" followed by hex. Two fact sets fingerprint equal exactly
// when every fact and the platform agree, so build tooling can detect
// configuration drift by comparing strings.
func (f Facts) Fingerprint() string {
	encoded, err := codec.Marshal(f)
	if err != nil {
		// Facts is a fixed struct of booleans and a text-marshaling
		// platform; canonical encoding cannot fail on it.
		panic("port: facts encoding failed: " + err.Error())
	}

	hasher, err := blake3.NewKeyed(factsDomainKey[:])
	if err != nil {
		// NewKeyed only fails on wrong key length, which the array
		// type rules out.
		panic("port: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(encoded)

	return "blake3:" + hex.EncodeToString(hasher.Sum(nil))
}
