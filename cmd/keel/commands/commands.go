// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the keel command tree.
package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/pflag"

	"github.com/stratadb/keel/cmd/keel/cli"
	"github.com/stratadb/keel/cmd/keel/doctor"
	"github.com/stratadb/keel/cmd/keel/generate"
	"github.com/stratadb/keel/cmd/keel/resolve"
	"github.com/stratadb/keel/lib/version"
)

// Root returns the root keel command.
func Root() *cli.Command {
	return &cli.Command{
		Name:    "keel",
		Summary: "Capability resolution for the Strata storage engine",
		Description: `Keel resolves the platform capability facts the Strata storage
engine is built against: the kernel sync primitives, the checksum and
compression paths, and the target byte order.

Facts resolve from a fixed precedence: an explicit override wins, then
platform detection, then the documented default. Resolution either
produces a complete fact set or fails loudly; no fact is ever guessed.`,
		Usage: "keel <command> [flags]",
		Subcommands: []*cli.Command{
			resolve.Command(),
			generate.Command(),
			doctor.Command(),
			versionCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Resolve facts for the build host",
				Command:     "keel resolve",
			},
			{
				Description: "Freeze facts for a cross target into Go constants",
				Command:     "keel generate --target freebsd/amd64 --out portdefs_freebsd.go",
			},
			{
				Description: "Run the diagnostic checklist",
				Command:     "keel doctor",
			},
		},
	}
}

type versionParams struct {
	cli.JSONOutput
}

type versionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	GitDirty  bool   `json:"git_dirty"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func versionCommand() *cli.Command {
	var params versionParams
	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Usage:   "keel version [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("version", &params)
		},
		Run: func(args []string) error {
			info := versionInfo{
				Version:   version.Version,
				GitCommit: version.GitCommit,
				GitDirty:  version.GitDirty == "true",
				BuildTime: version.BuildTime,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}
			if done, err := params.EmitJSON(info); done || err != nil {
				return err
			}
			fmt.Println(version.Full())
			return nil
		},
	}
}
