package conformance

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FixturePath is the directory of member-op scenario fixtures, relative
// to the conformance package (adapted from the teacher's TestPath, which
// pointed at cow_py's external conformance suite — this port's fixtures
// live inside the module since there's no external reference suite).
const FixturePath = "fixtures"

// LoadedTest represents a test with its source file path.
type LoadedTest struct {
	File  string
	Suite TestSuite
	Test  TestCase
}

// LoadAllTests walks the fixture directory and loads all test cases.
func LoadAllTests() ([]LoadedTest, error) {
	var loaded []LoadedTest

	testDir := ""
	candidates := []string{
		FixturePath,
		filepath.Join("conformance", FixturePath),
	}
	for _, candidate := range candidates {
		abs, err := filepath.Abs(candidate)
		if err == nil {
			if _, err := os.Stat(abs); err == nil {
				testDir = abs
				break
			}
		}
	}
	if testDir == "" {
		return nil, fmt.Errorf("could not find fixture directory (tried %v)", candidates)
	}

	err := filepath.Walk(testDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		tests, err := loadTestFile(path)
		if err != nil {
			relPath, _ := filepath.Rel(testDir, path)
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", relPath, err)
			return nil
		}

		relPath, _ := filepath.Rel(testDir, path)
		for _, test := range tests {
			loaded = append(loaded, LoadedTest{
				File:  relPath,
				Suite: test.Suite,
				Test:  test.Test,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loaded, nil
}

func loadTestFile(path string) ([]LoadedTest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var suite TestSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, err
	}

	var tests []LoadedTest
	for _, test := range suite.Tests {
		tests = append(tests, LoadedTest{Suite: suite, Test: test})
	}
	return tests, nil
}
