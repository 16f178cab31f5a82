// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"fmt"
	"io"
	"strings"

	"github.com/stratadb/keel/cmd/keel/cli"
)

// PrintChecklist prints check results as a human-readable checklist
// and returns a [cli.ExitError] with code 1 when any check failed so
// the process exit code reflects the outcome.
func PrintChecklist(w io.Writer, results []Result) error {
	anyFailed := false

	for _, result := range results {
		prefix := strings.ToUpper(string(result.Status))
		fmt.Fprintf(w, "[%-5s]  %-28s  %s\n", prefix, result.Name, result.Message)
		if result.Status == StatusFail {
			anyFailed = true
		}
	}

	fmt.Fprintln(w)

	if anyFailed {
		fmt.Fprintln(w, "Some checks failed.")
		return &cli.ExitError{Code: 1}
	}

	fmt.Fprintln(w, "All checks passed.")
	return nil
}
