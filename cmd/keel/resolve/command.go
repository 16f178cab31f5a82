// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

// Package resolve implements "keel resolve", which resolves the five
// capability facts for the host or a named target and reports each
// fact's value, source, and detection detail.
package resolve

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/stratadb/keel/cmd/keel/cli"
	"github.com/stratadb/keel/port"
)

// resolveParams holds the parameters for the resolve command.
type resolveParams struct {
	cli.JSONOutput
	cli.TargetConfig
	cli.OverrideConfig
}

// output is the JSON shape of a resolution: the full report plus the
// fact-set fingerprint.
type output struct {
	port.Report
	Fingerprint string `json:"fingerprint"`
}

// Command returns the "keel resolve" command.
func Command() *cli.Command {
	var params resolveParams

	return &cli.Command{
		Name:    "resolve",
		Summary: "Resolve capability facts for the host or a target",
		Description: `Resolve the five capability facts (range-sync, full-fsync,
hardware-crc, compression-lib, byte-order) for the build host, a canned
target, or a target manifest.

Each fact reports where its value came from: an explicit override, a
detection rule, or the documented default. Resolution fails when the
byte order cannot be determined and no override pins it; every other
fact always resolves.`,
		Usage: "keel resolve [flags]",
		Examples: []cli.Example{
			{
				Description: "Resolve the build host",
				Command:     "keel resolve",
			},
			{
				Description: "Resolve a cross-compilation target",
				Command:     "keel resolve --target freebsd/amd64",
			},
			{
				Description: "Pin the byte order for an unrecognized platform",
				Command:     "keel resolve --target experimentalos/riscv64 --set byte-order=false",
			},
			{
				Description: "Layer pins from a reviewed overrides file",
				Command:     "keel resolve --overrides port.jsonc --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("resolve", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			return runResolve(params)
		},
	}
}

func runResolve(params resolveParams) error {
	probe, err := params.TargetConfig.Probe()
	if err != nil {
		return err
	}
	overrides, err := params.OverrideConfig.Overrides()
	if err != nil {
		return err
	}

	report, err := port.Explain(probe, overrides)
	if err != nil {
		return err
	}

	result := output{Report: report, Fingerprint: report.Facts.Fingerprint()}
	if done, err := params.EmitJSON(result); done {
		return err
	}

	printReport(os.Stdout, result)
	return nil
}

// printReport writes the human-readable fact table.
func printReport(w io.Writer, result output) {
	fmt.Fprintf(w, "Platform:     %s\n", result.Platform)
	fmt.Fprintf(w, "Fingerprint:  %s\n\n", result.Fingerprint)

	fmt.Fprintf(w, "%-17s  %-7s  %-9s  %s\n", "FACT", "VALUE", "SOURCE", "DETAIL")
	for _, finding := range result.Findings {
		fmt.Fprintf(w, "%-17s  %-7s  %-9s  %s\n",
			finding.Fact, factValue(finding.Fact, finding.Value), finding.Source, finding.Detail)
	}
}

// factValue renders a fact's boolean for the table. Byte order reads
// better as the order itself than as a raw boolean.
func factValue(fact port.Fact, value bool) string {
	if fact == port.FactByteOrder {
		if value {
			return "big"
		}
		return "little"
	}
	return fmt.Sprintf("%t", value)
}
