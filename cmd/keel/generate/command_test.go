// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stratadb/keel/lib/codec"
	"github.com/stratadb/keel/port"
)

func TestBuildConstraint(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		constraint string
		want       string
	}{
		{"auto with arch", "freebsd/amd64", "auto", "freebsd && amd64"},
		{"auto platform only", "hpux", "auto", "hpux"},
		{"auto unrecognized platform", "plan9/amd64", "auto", ""},
		{"none", "freebsd/amd64", "none", ""},
		{"literal", "freebsd/amd64", "linux || darwin", "linux || darwin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := &generateParams{Constraint: tt.constraint}
			params.Target = tt.target
			if got := buildConstraint(params); got != tt.want {
				t.Errorf("buildConstraint(%q, %q) = %q, want %q", tt.target, tt.constraint, got, tt.want)
			}
		})
	}
}

func TestBuildConstraintFromManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target.yaml")
	manifest := "platform: netbsd\narch: amd64\n"
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	params := &generateParams{Constraint: "auto"}
	params.TargetFile = path
	if got, want := buildConstraint(params), "netbsd && amd64"; got != want {
		t.Errorf("buildConstraint() = %q, want %q", got, want)
	}
}

func TestRunGenerateWritesArtifact(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "portdefs_freebsd.go")
	factsPath := filepath.Join(dir, "facts.cbor")

	params := &generateParams{
		Package:    "portdefs",
		Out:        outPath,
		Constraint: "auto",
		FactsOut:   factsPath,
	}
	params.Target = "freebsd/amd64"

	if err := runGenerate(params); err != nil {
		t.Fatalf("runGenerate() error: %v", err)
	}

	source, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading generated source: %v", err)
	}
	text := string(source)
	for _, want := range []string{
		"// Code generated by keel generate. DO NOT EDIT.",
		"// Target: freebsd/amd64",
		"//go:build freebsd && amd64",
		"package portdefs",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("generated source missing %q:\n%s", want, text)
		}
	}

	wantFacts, err := port.Resolve(port.TargetProbe(port.PlatformFreeBSD, port.ArchAMD64), port.Overrides{})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	encoded, err := os.ReadFile(factsPath)
	if err != nil {
		t.Fatalf("reading facts sidecar: %v", err)
	}
	var gotFacts port.Facts
	if err := codec.Unmarshal(encoded, &gotFacts); err != nil {
		t.Fatalf("decoding facts sidecar: %v", err)
	}
	if gotFacts != wantFacts {
		t.Errorf("facts sidecar = %+v, want %+v", gotFacts, wantFacts)
	}
	if !strings.Contains(text, "// Fingerprint: "+wantFacts.Fingerprint()) {
		t.Errorf("generated source missing fingerprint %s:\n%s", wantFacts.Fingerprint(), text)
	}
}

func TestRunGenerateRejectsBadTarget(t *testing.T) {
	params := &generateParams{Package: "portdefs", Out: "-", Constraint: "none"}
	params.Target = "linux/amd65"
	if err := runGenerate(params); err == nil {
		t.Error("runGenerate() with a bad target succeeded, want error")
	}
}

func TestRunGenerateRejectsConflictingTargets(t *testing.T) {
	params := &generateParams{Package: "portdefs", Out: "-", Constraint: "none"}
	params.Target = "linux/amd64"
	params.TargetFile = "target.yaml"
	if err := runGenerate(params); err == nil {
		t.Error("runGenerate() with both --target and --target-file succeeded, want error")
	}
}

func TestGenerateFlags(t *testing.T) {
	flags := Command().Flags()
	for _, name := range []string{"target", "target-file", "overrides", "set", "package", "out", "constraint", "facts-out"} {
		if flags.Lookup(name) == nil {
			t.Errorf("generate flags missing --%s", name)
		}
	}
	if got, want := flags.Lookup("package").DefValue, "portdefs"; got != want {
		t.Errorf("--package default = %q, want %q", got, want)
	}
	if got, want := flags.Lookup("out").DefValue, "-"; got != want {
		t.Errorf("--out default = %q, want %q", got, want)
	}
}
