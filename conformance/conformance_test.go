package conformance

import "testing"

func TestConformance(t *testing.T) {
	tests, err := LoadAllTests()
	if err != nil {
		t.Fatalf("failed to load scenarios: %v", err)
	}
	if len(tests) == 0 {
		t.Fatal("no scenarios loaded")
	}

	results := RunAll(tests)
	stats := ComputeStats(results)

	byFile := make(map[string][]TestResult)
	for _, result := range results {
		byFile[result.Test.File] = append(byFile[result.Test.File], result)
	}

	for file, fileResults := range byFile {
		t.Run(file, func(t *testing.T) {
			for _, result := range fileResults {
				result := result
				t.Run(result.Test.Test.Name, func(t *testing.T) {
					if result.Skipped {
						t.Skipf("skipped: %s", result.SkipReason)
						return
					}
					if !result.Passed {
						t.Errorf("%v", result.Error)
					}
				})
			}
		})
	}

	t.Logf("%s", FormatStats(stats))
}

func TestLoadAllTests(t *testing.T) {
	tests, err := LoadAllTests()
	if err != nil {
		t.Fatalf("failed to load scenarios: %v", err)
	}
	if len(tests) == 0 {
		t.Fatal("no scenarios loaded")
	}
	for _, test := range tests {
		if test.Test.Name == "" {
			t.Errorf("scenario in %s has no name", test.File)
		}
		if test.Test.Source == "" {
			t.Errorf("scenario %q in %s has no source", test.Test.Name, test.File)
		}
		if test.Test.Expect.Output == "" && test.Test.Expect.Error == "" {
			t.Errorf("scenario %q in %s has no expectation", test.Test.Name, test.File)
		}
	}
}
