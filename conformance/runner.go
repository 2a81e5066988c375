package conformance

import (
	"bytes"
	"fmt"
	"strings"

	"mython/eval"
	"mython/parser"
	"mython/types"
)

// TestResult is the outcome of running a single scenario.
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// Run executes one scenario's source against a fresh interpreter and checks
// it against the scenario's expectation.
func Run(test LoadedTest) TestResult {
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{Test: test, Skipped: true, SkipReason: reason}
	}

	var out bytes.Buffer
	ctx := types.NewContext(&out)
	scope := types.NewScope()

	p := parser.NewParser(test.Test.Source)
	program, err := p.Parse()
	if err == nil {
		_, err = eval.Execute(program, scope, ctx)
	}

	passed, checkErr := checkExpectation(test.Test.Expect, out.String(), err)
	return TestResult{Test: test, Passed: passed, Error: checkErr}
}

// RunAll runs every scenario in tests.
func RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = Run(test)
	}
	return results
}

func checkExpectation(expect Expectation, output string, runErr error) (bool, error) {
	if expect.Error != "" {
		if runErr == nil {
			return false, fmt.Errorf("expected error containing %q, got no error (output: %q)", expect.Error, output)
		}
		if !strings.Contains(runErr.Error(), expect.Error) {
			return false, fmt.Errorf("expected error containing %q, got %q", expect.Error, runErr.Error())
		}
		return true, nil
	}

	if runErr != nil {
		return false, fmt.Errorf("unexpected error: %v", runErr)
	}
	if output != expect.Output {
		return false, fmt.Errorf("expected output %q, got %q", expect.Output, output)
	}
	return true, nil
}

// SummaryStats tallies a batch of results.
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats summarizes results.
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Skipped:
			stats.Skipped++
		case r.Passed:
			stats.Passed++
		default:
			stats.Failed++
		}
	}
	return stats
}

// FormatStats renders stats as a human-readable line.
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}
