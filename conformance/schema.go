package conformance

// TestSuite is one YAML fixture file: a named group of scenarios sharing a
// description, grounded on the teacher's conformance TestSuite/TestCase
// split but narrowed to what a Mython program can express (no database
// setup/teardown blocks, no permission levels).
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase is one scenario: a complete Mython program plus its expected
// outcome. Exactly one of Expect.Output or Expect.Error should be set.
type TestCase struct {
	Name   string      `yaml:"name"`
	Skip   interface{} `yaml:"skip,omitempty"` // bool or string reason
	Source string      `yaml:"source"`
	Expect Expectation `yaml:"expect"`
}

// Expectation describes what running Source should produce: either the
// exact bytes written to stdout, or a substring that must appear in the
// error returned by lexing, parsing or evaluation.
type Expectation struct {
	Output string `yaml:"output,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

// IsSkipped reports whether this test should be skipped, and why.
func (tc *TestCase) IsSkipped() (bool, string) {
	switch v := tc.Skip.(type) {
	case nil:
		return false, ""
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}
