package conformance

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TestDir is the directory of YAML scenario fixtures, relative to this
// package (go test's working directory is always the package directory).
const TestDir = "testdata"

// LoadedTest pairs one TestCase with the file it came from, for readable
// subtest names.
type LoadedTest struct {
	File string
	Test TestCase
}

// LoadAllTests walks TestDir and loads every scenario from every .yaml file
// in it.
func LoadAllTests() ([]LoadedTest, error) {
	entries, err := os.ReadDir(TestDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", TestDir, err)
	}

	var loaded []LoadedTest
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		path := filepath.Join(TestDir, entry.Name())
		tests, err := loadTestFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		for _, test := range tests {
			loaded = append(loaded, LoadedTest{File: entry.Name(), Test: test})
		}
	}
	return loaded, nil
}

func loadTestFile(path string) ([]TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var suite TestSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, err
	}
	return suite.Tests, nil
}
