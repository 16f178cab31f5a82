// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package port

// ruleOutcome is what a detection rule concludes from a symbol table.
// Exactly one of the three shapes occurs: a value with its detail, or
// a missing symbol name when the probe is inconclusive.
type ruleOutcome struct {
	bigEndian bool
	detail    string
	missing   string
}

// endianRule is one arm of the byte-order dispatch. Rules are matched
// in table order against the probed platform; nil platforms marks the
// generic fallback arm, which matches any recognized platform. Listing
// the specific arms first is what makes "specific beats generic" hold
// structurally rather than by convention.
type endianRule struct {
	name      string
	platforms []Platform
	resolve   func(SymbolSet) ruleOutcome
}

// endianRules, in match order. The arms mirror how each platform
// family actually declares byte order, including the spellings that
// differ from the generic <endian.h> convention.
var endianRules = []endianRule{
	{
		// Apple platforms: both __DARWIN_ symbols must be present;
		// equality means big-endian. A partial table is inconclusive
		// rather than assumed little.
		name:      "darwin",
		platforms: []Platform{PlatformDarwin, PlatformIOS},
		resolve: func(s SymbolSet) ruleOutcome {
			return compareSymbols(s, SymbolDarwinByteOrder, SymbolDarwinBigEndian)
		},
	},
	{
		// Solaris-family: isa_defs.h defines _BIG_ENDIAN or
		// _LITTLE_ENDIAN as a bare marker, so this is a defined-check,
		// not a value comparison, and it can never be inconclusive.
		name:      "solaris",
		platforms: []Platform{PlatformSolaris, PlatformIllumos},
		resolve: func(s SymbolSet) ruleOutcome {
			if s.Defined(SymbolBigEndian) {
				return ruleOutcome{bigEndian: true, detail: SymbolBigEndian + " defined"}
			}
			return ruleOutcome{bigEndian: false, detail: SymbolBigEndian + " not defined"}
		},
	},
	{
		// BSD family: sys/endian.h declares comparable values under
		// single-underscore names.
		name: "bsd",
		platforms: []Platform{
			PlatformFreeBSD, PlatformOpenBSD, PlatformNetBSD, PlatformDragonFly,
		},
		resolve: func(s SymbolSet) ruleOutcome {
			return compareSymbols(s, SymbolByteOrder, SymbolBigEndian)
		},
	},
	{
		// HP-UX is big-endian by architecture convention. No symbol
		// consultation: the rule holds even against a probe that
		// declares contradictory symbols.
		name:      "hpux",
		platforms: []Platform{PlatformHPUX},
		resolve: func(SymbolSet) ruleOutcome {
			return ruleOutcome{bigEndian: true, detail: "platform convention"}
		},
	},
	{
		// Android carries BSD-style single-underscore names in its
		// sys/endian.h; historical NDK releases shipped the generic
		// __BYTE_ORDER spelling broken on some ABIs, so this rule
		// must consult _BYTE_ORDER and never the generic name.
		name:      "android",
		platforms: []Platform{PlatformAndroid},
		resolve: func(s SymbolSet) ruleOutcome {
			return compareSymbols(s, SymbolByteOrder, SymbolBigEndian)
		},
	},
	{
		// Generic fallback: the <endian.h> spelling. Matches every
		// recognized platform not claimed by a specific arm (Linux,
		// and Windows, where the symbols are never declared, making
		// byte order an override-only fact there).
		name: "generic",
		resolve: func(s SymbolSet) ruleOutcome {
			return compareSymbols(s, SymbolGenericByteOrder, SymbolGenericBigEndian)
		},
	},
}

// compareSymbols implements the common rule shape: both symbols must
// be declared, and byte order is big-endian exactly when the
// platform's byte-order symbol equals its big-endian symbol.
func compareSymbols(s SymbolSet, orderSymbol, bigSymbol string) ruleOutcome {
	order, ok := s.Lookup(orderSymbol)
	if !ok {
		return ruleOutcome{missing: orderSymbol}
	}
	big, ok := s.Lookup(bigSymbol)
	if !ok {
		return ruleOutcome{missing: bigSymbol}
	}
	if order == big {
		return ruleOutcome{bigEndian: true, detail: orderSymbol + " == " + bigSymbol}
	}
	return ruleOutcome{bigEndian: false, detail: orderSymbol + " != " + bigSymbol}
}

// resolveByteOrder dispatches the probe through the rule table and
// returns the detected byte order with its rule detail. Errors are
// *UnresolvableError (no rule matched, an unrecognized platform) or
// *MissingSymbolError (the matched rule's required symbol is absent).
func resolveByteOrder(p Probe) (bool, string, error) {
	platform := p.Platform()
	if platform == PlatformUnknown {
		return false, "", &UnresolvableError{Fact: FactByteOrder, Platform: platform}
	}

	for _, rule := range endianRules {
		if !rule.matches(platform) {
			continue
		}
		outcome := rule.resolve(p.Symbols())
		if outcome.missing != "" {
			return false, "", &MissingSymbolError{Platform: platform, Symbol: outcome.missing}
		}
		return outcome.bigEndian, outcome.detail, nil
	}

	// Unreachable while the generic arm matches every recognized
	// platform, but a trimmed rule table must still fail closed.
	return false, "", &UnresolvableError{Fact: FactByteOrder, Platform: platform}
}

// matches reports whether the rule's arm applies to the platform.
// An arm with no platform list is the generic fallback.
func (r *endianRule) matches(platform Platform) bool {
	if r.platforms == nil {
		return true
	}
	for _, p := range r.platforms {
		if p == platform {
			return true
		}
	}
	return false
}
