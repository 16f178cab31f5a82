// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package port

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TargetProbe synthesizes a probe for a named platform/architecture
// pair, for resolving facts about a target other than the build host.
// Primitives come from the platform knowledge table; byte-order
// symbols are synthesized in the platform's header spelling from the
// architecture's byte order.
//
// Pass ArchUnknown when the architecture is unknown or irrelevant:
// the probe then declares no symbols, which resolves fine for
// platforms with architecture-independent byte order (HP-UX) and
// makes the probe deliberately inconclusive everywhere else.
// Platform/architecture pairings are not validated; a probe
// describes a hypothetical target, and "freebsd on s390x" is a
// legitimate question even though no such port ships.
func TargetProbe(platform Platform, arch Arch) Probe {
	var symbols SymbolSet
	if arch != ArchUnknown {
		symbols = synthesizeSymbols(platform, arch.BigEndian())
	}
	return &tableProbe{
		platform:   platform,
		primitives: primitivesFor(platform),
		symbols:    symbols,
	}
}

// TargetSpec is a declarative probe loaded from a YAML manifest, for
// targets outside the built-in knowledge table or for overriding what
// the table would synthesize. A manifest names the platform and then
// describes the target either by architecture (symbols synthesized)
// or by declaring primitives and symbols directly:
//
//	platform: netbsd
//	arch: amd64
//
//	# or, spelled out:
//	platform: netbsd
//	primitives: [range-sync]
//	symbols:
//	  _BYTE_ORDER: 1234
//	  _BIG_ENDIAN: 4321
//	  _LITTLE_ENDIAN: 1234
//
// Explicit primitives and symbols take precedence over what the
// architecture would synthesize.
type TargetSpec struct {
	Platform   string           `yaml:"platform"`
	Arch       string           `yaml:"arch,omitempty"`
	Primitives []string         `yaml:"primitives,omitempty"`
	Symbols    map[string]int64 `yaml:"symbols,omitempty"`
}

// LoadTargetSpec reads and parses a target manifest. Unknown YAML
// fields are rejected: a typo in a manifest silently changing the
// resolved byte order is exactly the failure mode this package
// exists to prevent.
func LoadTargetSpec(path string) (*TargetSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading target manifest: %w", err)
	}
	spec, err := ParseTargetSpec(data)
	if err != nil {
		return nil, fmt.Errorf("target manifest %s: %w", path, err)
	}
	return spec, nil
}

// ParseTargetSpec parses target manifest YAML.
func ParseTargetSpec(data []byte) (*TargetSpec, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var spec TargetSpec
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing target manifest: %w", err)
	}
	if spec.Platform == "" {
		return nil, fmt.Errorf("target manifest: platform is required")
	}
	return &spec, nil
}

// Probe converts the manifest into a resolvable probe. Primitive
// names are validated here rather than at parse time so error
// messages can name the manifest's platform.
func (s *TargetSpec) Probe() (Probe, error) {
	platform := ParsePlatform(s.Platform)

	var arch Arch
	if s.Arch != "" {
		parsed, err := ParseArch(s.Arch)
		if err != nil {
			return nil, fmt.Errorf("target %s: %w", s.Platform, err)
		}
		arch = parsed
	}

	// A present-but-empty list is meaningful: "primitives: []"
	// declares a target with no durability primitives, while an
	// omitted field defers to the knowledge table.
	primitives := primitivesFor(platform)
	if s.Primitives != nil {
		primitives = make(map[Primitive]bool)
		for _, name := range s.Primitives {
			primitive, err := ParsePrimitive(name)
			if err != nil {
				return nil, fmt.Errorf("target %s: %w", s.Platform, err)
			}
			primitives[primitive] = true
		}
	}

	var symbols SymbolSet
	if arch != ArchUnknown {
		symbols = synthesizeSymbols(platform, arch.BigEndian())
	}
	if s.Symbols != nil {
		symbols = SymbolSet(s.Symbols)
	}

	return &tableProbe{
		platform:   platform,
		primitives: primitives,
		symbols:    symbols,
	}, nil
}
