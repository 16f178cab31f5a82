// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

// Package generate implements the keel generate command, which
// resolves capability facts for a target and freezes them into a
// generated Go source file of untyped constants.
package generate

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/stratadb/keel/cmd/keel/cli"
	"github.com/stratadb/keel/lib/codec"
	"github.com/stratadb/keel/port"
)

type generateParams struct {
	cli.TargetConfig
	cli.OverrideConfig

	Package    string `flag:"package" default:"portdefs" desc:"package clause for the generated file"`
	Out        string `flag:"out" default:"-" desc:"output path, - for stdout"`
	Constraint string `flag:"constraint" default:"auto" desc:"go:build expression: auto, none, or a literal expression"`
	FactsOut   string `flag:"facts-out" desc:"also write the resolved facts as CBOR to this path"`
}

// Command returns the generate command.
func Command() *cli.Command {
	var params generateParams
	return &cli.Command{
		Name:    "generate",
		Summary: "Emit resolved facts as a generated Go source file",
		Description: `Generate resolves capability facts for a target, exactly as the
resolve command does, then emits them as a generated Go source file of
untyped boolean constants. Downstream packages compile against the
constants instead of probing at runtime.

The file carries a standard generated-code marker, the target it was
resolved for, and the fact-set fingerprint, so a stale artifact is
detectable by inspection. By default it also carries a go:build
constraint synthesized from the target, so an artifact generated for
one platform cannot leak into another platform's build.`,
		Usage: "keel generate [flags]",
		Examples: []cli.Example{
			{
				Description: "Generate constants for the host into portdefs.go",
				Command:     "keel generate --out portdefs.go",
			},
			{
				Description: "Cross-generate for FreeBSD with an explicit constraint",
				Command:     "keel generate --target freebsd/amd64 --out portdefs_freebsd.go",
			},
			{
				Description: "Generate without a build constraint, plus a CBOR sidecar",
				Command:     "keel generate --constraint none --out portdefs.go --facts-out facts.cbor",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("generate", &params)
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("generate takes no arguments, got %d", len(args))
			}
			return runGenerate(&params)
		},
	}
}

func runGenerate(params *generateParams) error {
	logger := cli.NewCommandLogger().With("command", "generate")

	probe, err := params.TargetConfig.Probe()
	if err != nil {
		return err
	}
	overrides, err := params.OverrideConfig.Overrides()
	if err != nil {
		return err
	}
	facts, err := port.Resolve(probe, overrides)
	if err != nil {
		return err
	}

	artifact := Artifact{
		Package:    params.Package,
		Constraint: buildConstraint(params),
		Target:     params.TargetConfig.Label(),
		Facts:      facts,
	}
	source, err := artifact.Render()
	if err != nil {
		return err
	}

	if params.Out == "-" {
		if _, err := os.Stdout.Write(source); err != nil {
			return fmt.Errorf("writing generated source: %w", err)
		}
	} else {
		if err := os.WriteFile(params.Out, source, 0o644); err != nil {
			return fmt.Errorf("writing generated source: %w", err)
		}
		logger.Info("wrote generated source", "path", params.Out, "fingerprint", facts.Fingerprint())
	}

	if params.FactsOut != "" {
		encoded, err := codec.Marshal(facts)
		if err != nil {
			return fmt.Errorf("encoding facts: %w", err)
		}
		if err := os.WriteFile(params.FactsOut, encoded, 0o644); err != nil {
			return fmt.Errorf("writing facts: %w", err)
		}
		logger.Info("wrote facts", "path", params.FactsOut)
	}
	return nil
}

// buildConstraint decides the go:build expression for the artifact.
// "auto" synthesizes one from the target platform, and the target
// architecture when one was named; "none" suppresses the constraint;
// anything else is taken literally.
func buildConstraint(params *generateParams) string {
	switch params.Constraint {
	case "none":
		return ""
	case "auto":
		return autoConstraint(params)
	default:
		return params.Constraint
	}
}

func autoConstraint(params *generateParams) string {
	platform, arch, err := params.TargetConfig.Parsed()
	if err != nil || platform == port.PlatformUnknown {
		return ""
	}
	if arch == port.ArchUnknown {
		return platform.String()
	}
	return fmt.Sprintf("%s && %s", platform, arch)
}
