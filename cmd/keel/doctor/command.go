// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

// Package doctor implements the keel doctor command, a diagnostic
// checklist that resolves capability facts for a target and exercises
// every consumer of them: checksum, compression, durability, and the
// fact fingerprint.
package doctor

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/stratadb/keel/cmd/keel/cli"
	"github.com/stratadb/keel/cmd/keel/cli/doctor"
	"github.com/stratadb/keel/port"
)

type doctorParams struct {
	cli.JSONOutput
	cli.TargetConfig
	cli.OverrideConfig

	Expect string `flag:"expect" desc:"compare resolved facts against a recorded CBOR facts file"`
}

// Command returns the doctor command.
func Command() *cli.Command {
	var params doctorParams
	return &cli.Command{
		Name:    "doctor",
		Summary: "Diagnose capability resolution for a target",
		Description: `Doctor resolves capability facts, then runs a checklist against
the result: platform recognition, byte-order resolution, the kernel
sync primitives, the checksum and compression paths, a durable flush
of a scratch file, and fingerprint determinism.

A warn means the platform lacks an optional primitive and the engine
falls back; a fail means the build would misbehave. Doctor exits
nonzero when any check fails, so it slots into CI.

With --expect, doctor also compares the resolved facts against a CBOR
facts file recorded by keel generate, catching toolchain or manifest
drift since the artifact was produced.`,
		Usage: "keel doctor [flags]",
		Examples: []cli.Example{
			{
				Description: "Check the build host",
				Command:     "keel doctor",
			},
			{
				Description: "Check a canned target, machine-readable",
				Command:     "keel doctor --target openbsd/riscv64 --json",
			},
			{
				Description: "Verify a generated artifact is still current",
				Command:     "keel doctor --expect facts.cbor",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("doctor", &params)
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("doctor takes no arguments, got %d", len(args))
			}
			return runDoctor(&params)
		},
	}
}

func runDoctor(params *doctorParams) error {
	results, err := collect(params)
	if err != nil {
		return err
	}
	return finish(params, results)
}

// collect resolves the target and runs the checklist. A byte-order
// resolution failure is a failed check, not an error: the remaining
// checks need facts, so the checklist stops there.
func collect(params *doctorParams) ([]doctor.Result, error) {
	probe, err := params.TargetConfig.Probe()
	if err != nil {
		return nil, err
	}
	overrides, err := params.OverrideConfig.Overrides()
	if err != nil {
		return nil, err
	}

	results := []doctor.Result{checkPlatform(probe)}

	report, err := port.Explain(probe, overrides)
	if err != nil {
		results = append(results, doctor.Fail("byte-order",
			fmt.Sprintf("%v; pin it with --set byte-order=true|false", err)))
		return results, nil
	}
	results = append(results, checkByteOrder(report))

	facts := report.Facts
	results = append(results,
		checkPrimitive(probe, port.PrimitiveRangeSync, "no ranged flush; durability degrades to full syncs"),
		checkPrimitive(probe, port.PrimitiveFullFsync, "no device-flush control; fsync is the ceiling"),
		checkHardwareCRC(facts),
		checkChecksum(),
		checkCompression(facts),
		checkDurability(facts),
		checkFingerprint(probe, overrides),
	)
	if params.Expect != "" {
		results = append(results, checkExpected(facts, params.Expect))
	}
	return results, nil
}

// finish emits the results in the requested format. Both formats exit
// nonzero when any check failed.
func finish(params *doctorParams, results []doctor.Result) error {
	if done, err := params.EmitJSON(doctor.BuildJSON(results)); done || err != nil {
		if err != nil {
			return err
		}
		for _, result := range results {
			if result.Status == doctor.StatusFail {
				return &cli.ExitError{Code: 1}
			}
		}
		return nil
	}
	return doctor.PrintChecklist(os.Stdout, results)
}
