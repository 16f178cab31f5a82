// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

// Package doctor provides the checklist primitives for keel's doctor
// command: per-check results, pass/fail/warn/skip statuses, and the
// human-readable checklist printer.
package doctor

// Status is the outcome of a single health check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
	StatusSkip Status = "skip"
)

// Result holds the outcome of a single health check.
type Result struct {
	Name    string `json:"name"    desc:"health check name"`
	Status  Status `json:"status"  desc:"check outcome: pass, fail, warn, skip"`
	Message string `json:"message" desc:"human-readable check result"`
}

// Pass creates a passing check result.
func Pass(name, message string) Result {
	return Result{Name: name, Status: StatusPass, Message: message}
}

// Fail creates a failing check result.
func Fail(name, message string) Result {
	return Result{Name: name, Status: StatusFail, Message: message}
}

// Warn creates a warning check result. Warnings do not cause the
// doctor command to exit with a non-zero status.
func Warn(name, message string) Result {
	return Result{Name: name, Status: StatusWarn, Message: message}
}

// Skip creates a skipped check result. Checks are skipped when the
// resolved facts make them moot (the compression roundtrip skips when
// the codecs are disabled).
func Skip(name, message string) Result {
	return Result{Name: name, Status: StatusSkip, Message: message}
}

// JSONOutput is the JSON output structure for the doctor command.
type JSONOutput struct {
	Checks []Result `json:"checks" desc:"list of health check results"`
	OK     bool     `json:"ok"     desc:"true if no check failed"`
}

// BuildJSON assembles the JSON output for a check run.
func BuildJSON(results []Result) *JSONOutput {
	output := &JSONOutput{Checks: results, OK: true}
	for _, result := range results {
		if result.Status == StatusFail {
			output.OK = false
		}
	}
	return output
}
