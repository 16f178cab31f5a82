// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/stratadb/keel/port"
)

// TargetConfig is the embeddable flag group selecting what to resolve:
// the build host by default, a canned platform/arch target, or a YAML
// target manifest.
type TargetConfig struct {
	Target     string `json:"target,omitempty"      flag:"target"      desc:"resolve a canned target (platform or platform/arch) instead of the host"`
	TargetFile string `json:"target_file,omitempty" flag:"target-file" desc:"resolve a YAML target manifest instead of the host"`
}

// Probe builds the probe the flags select.
func (c *TargetConfig) Probe() (port.Probe, error) {
	if c.Target != "" && c.TargetFile != "" {
		return nil, fmt.Errorf("--target and --target-file are mutually exclusive")
	}

	if c.TargetFile != "" {
		spec, err := port.LoadTargetSpec(c.TargetFile)
		if err != nil {
			return nil, err
		}
		return spec.Probe()
	}

	if c.Target != "" {
		platform, arch, err := port.ParseTarget(c.Target)
		if err != nil {
			return nil, fmt.Errorf("--target %q: %w", c.Target, err)
		}
		return port.TargetProbe(platform, arch), nil
	}

	return port.Host(), nil
}

// Label names the selected target for artifact headers and logs.
func (c *TargetConfig) Label() string {
	switch {
	case c.Target != "":
		return c.Target
	case c.TargetFile != "":
		return c.TargetFile
	default:
		return "host"
	}
}

// Parsed reports the platform and architecture the config names,
// without building a probe. The architecture is [port.ArchUnknown]
// when the target leaves it unstated.
func (c *TargetConfig) Parsed() (port.Platform, port.Arch, error) {
	if c.Target != "" && c.TargetFile != "" {
		return port.PlatformUnknown, port.ArchUnknown, fmt.Errorf("--target and --target-file are mutually exclusive")
	}

	if c.TargetFile != "" {
		spec, err := port.LoadTargetSpec(c.TargetFile)
		if err != nil {
			return port.PlatformUnknown, port.ArchUnknown, err
		}
		platform := port.ParsePlatform(spec.Platform)
		if spec.Arch == "" {
			return platform, port.ArchUnknown, nil
		}
		arch, err := port.ParseArch(spec.Arch)
		if err != nil {
			return platform, port.ArchUnknown, err
		}
		return platform, arch, nil
	}

	if c.Target != "" {
		return port.ParseTarget(c.Target)
	}

	platform := port.ParsePlatform(runtime.GOOS)
	arch, err := port.ParseArch(runtime.GOARCH)
	if err != nil {
		// A host architecture outside the table still resolves; it
		// just cannot contribute to a build constraint.
		return platform, port.ArchUnknown, nil
	}
	return platform, arch, nil
}

// OverrideConfig is the embeddable flag group collecting fact
// overrides: a JSONC overrides file, then per-fact --set pins layered
// on top (a --set pin wins where both pin the same fact).
type OverrideConfig struct {
	OverridesFile string   `json:"overrides,omitempty" flag:"overrides" desc:"JSONC file pinning facts to explicit values"`
	Set           []string `json:"set,omitempty"       flag:"set"       desc:"pin one fact (fact=true|false); repeatable"`
}

// Overrides builds the merged override set the flags describe.
func (c *OverrideConfig) Overrides() (port.Overrides, error) {
	var overrides port.Overrides
	if c.OverridesFile != "" {
		loaded, err := port.LoadOverrides(c.OverridesFile)
		if err != nil {
			return port.Overrides{}, err
		}
		overrides = loaded
	}

	var pins port.Overrides
	for _, entry := range c.Set {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			return port.Overrides{}, fmt.Errorf("invalid --set %q: want fact=true|false", entry)
		}
		fact, err := port.ParseFact(name)
		if err != nil {
			return port.Overrides{}, fmt.Errorf("invalid --set %q: %w", entry, err)
		}
		pinned, err := strconv.ParseBool(value)
		if err != nil {
			return port.Overrides{}, fmt.Errorf("invalid --set %q: value must be true or false", entry)
		}
		pins.Set(fact, pinned)
	}

	return overrides.Merged(pins), nil
}
