// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package port

// Resolve produces the capability facts for the probed target under
// the strict precedence rule: explicit override, then detection, then
// documented default. Exactly one concrete value per fact; the only
// possible failure is byte order on a target that no detection rule
// covers and no override pins (see [UnresolvableError] and
// [MissingSymbolError]).
//
// Resolve is pure: the same probe and overrides always produce
// identical facts.
func Resolve(p Probe, o Overrides) (Facts, error) {
	report, err := Explain(p, o)
	if err != nil {
		return Facts{}, err
	}
	return report.Facts, nil
}

// Explain resolves exactly like [Resolve] and additionally records,
// per fact, the value, its source, and the detection detail behind
// it. Resolve is defined in terms of Explain, so the two can never
// disagree about a fact.
func Explain(p Probe, o Overrides) (Report, error) {
	platform := p.Platform()

	// Each fact resolves independently of the others; the fixed
	// ordering here is presentation order, not evaluation
	// dependency.
	rangeSync := resolvePrimitiveFact(FactRangeSync, o.RangeSync, p, PrimitiveRangeSync)
	fullFsync := resolvePrimitiveFact(FactFullFsync, o.FullFsync, p, PrimitiveFullFsync)
	hardwareCRC := resolveFixedFact(FactHardwareCRC, o.HardwareCRC, false,
		"no detection rule; software checksum path")
	compressionLib := resolveFixedFact(FactCompressionLib, o.CompressionLib, true,
		"compression library assumed linked")

	byteOrder, err := resolveByteOrderFact(o.BigEndian, p)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Platform: platform,
		Facts: Facts{
			Platform:          platform,
			HasRangeSync:      rangeSync.Value,
			HasFullFsync:      fullFsync.Value,
			HasHardwareCRC:    hardwareCRC.Value,
			HasCompressionLib: compressionLib.Value,
			BigEndian:         byteOrder.Value,
		},
		Findings: []Finding{rangeSync, fullFsync, hardwareCRC, compressionLib, byteOrder},
	}
	return report, nil
}

// resolvePrimitiveFact resolves a capability fact backed by a
// durability primitive probe. Never fails: an absent primitive is a
// detected false, not an error.
func resolvePrimitiveFact(fact Fact, override *bool, p Probe, primitive Primitive) Finding {
	if override != nil {
		return Finding{Fact: fact, Value: *override, Source: SourceOverride, Detail: "explicit override"}
	}
	if p.HasPrimitive(primitive) {
		return Finding{Fact: fact, Value: true, Source: SourceDetected, Detail: primitive.String() + " primitive present"}
	}
	return Finding{Fact: fact, Value: false, Source: SourceDetected, Detail: primitive.String() + " primitive absent"}
}

// resolveFixedFact resolves a fact that has no detection rule: the
// override if present, otherwise the documented default.
func resolveFixedFact(fact Fact, override *bool, defaultValue bool, detail string) Finding {
	if override != nil {
		return Finding{Fact: fact, Value: *override, Source: SourceOverride, Detail: "explicit override"}
	}
	return Finding{Fact: fact, Value: defaultValue, Source: SourceDefault, Detail: detail}
}

// resolveByteOrderFact resolves the one fact that can fail. An
// override skips detection entirely, which is what lets wholly
// unrecognized targets resolve when the operator pins byte order.
func resolveByteOrderFact(override *bool, p Probe) (Finding, error) {
	if override != nil {
		return Finding{Fact: FactByteOrder, Value: *override, Source: SourceOverride, Detail: "explicit override"}, nil
	}
	bigEndian, detail, err := resolveByteOrder(p)
	if err != nil {
		return Finding{}, err
	}
	return Finding{Fact: FactByteOrder, Value: bigEndian, Source: SourceDetected, Detail: detail}, nil
}
