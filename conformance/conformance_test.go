package conformance

import (
	"fmt"
	"testing"
)

// TestConformance loads every fixture file and runs its scenarios,
// reporting one subtest per file and one nested subtest per case. Shape
// mirrors the teacher's TestConformance (conformance/conformance_test.go):
// load, run, group by file, subtest, log a summary — retargeted from "MOO
// program output" to "resulting cell plus diagnostic trail".
func TestConformance(t *testing.T) {
	tests, err := LoadAllTests()
	if err != nil {
		t.Fatalf("Failed to load tests: %v", err)
	}
	if len(tests) == 0 {
		t.Fatal("No tests loaded")
	}

	runner := NewRunner()
	results := runner.RunAll(tests)
	stats := ComputeStats(results)

	fileGroups := make(map[string][]TestResult)
	for _, result := range results {
		fileGroups[result.Test.File] = append(fileGroups[result.Test.File], result)
	}

	for file, fileResults := range fileGroups {
		file, fileResults := file, fileResults
		t.Run(file, func(t *testing.T) {
			for _, result := range fileResults {
				result := result
				t.Run(result.Test.Test.Name, func(t *testing.T) {
					if result.Skipped {
						t.Skipf("Skipped: %s", result.SkipReason)
					} else if !result.Passed {
						if result.Error != nil {
							t.Errorf("Test failed: %v", result.Error)
						} else {
							t.Error("Test failed")
						}
					}
				})
			}
		})
	}

	t.Logf("\n=== Summary ===\n%s", FormatStats(stats))
}

// TestLoadAllTests sanity-checks the fixture loader against spec.md §8's
// seven end-to-end scenarios plus whatever additional per-base-kind cases
// the fixture files carry.
func TestLoadAllTests(t *testing.T) {
	tests, err := LoadAllTests()
	if err != nil {
		t.Fatalf("Failed to load tests: %v", err)
	}

	t.Logf("Loaded %d test cases from conformance suite", len(tests))

	if len(tests) < 7 {
		t.Errorf("expected at least 7 loaded scenarios (spec.md §8), got %d", len(tests))
	}

	if len(tests) > 0 {
		first := tests[0]
		if first.Test.Name == "" {
			t.Error("Test has no name")
		}
		if first.File == "" {
			t.Error("Test has no file path")
		}
	}

	files := make(map[string]bool)
	for _, test := range tests {
		files[test.File] = true
	}
	t.Logf("Found %d test files", len(files))
	if len(files) == 0 {
		t.Error("no fixture files contributed any test cases")
	}
}

// TestYAMLParsing verifies every fixture parses and every case carries
// enough to run: a name, an op, and an expectation.
func TestYAMLParsing(t *testing.T) {
	tests, err := LoadAllTests()
	if err != nil {
		t.Fatalf("YAML parsing failed: %v", err)
	}

	for i, test := range tests {
		if test.Test.Name == "" {
			t.Errorf("Test %d in %s has no name", i, test.File)
		}
		if test.Test.Op == "" {
			t.Errorf("Test %s in %s has no op", test.Test.Name, test.File)
		}
		expect := test.Test.Expect
		if expect.Value == nil && expect.Bool == nil && len(expect.Diagnostics) == 0 &&
			!expect.InvalidSetM && expect.Fatal == "" && expect.BaseKind == "" {
			t.Errorf("Test %s in %s has no expectation", test.Test.Name, test.File)
		}
	}

	t.Logf("All %d tests parsed successfully", len(tests))
}

// BenchmarkLoadAllTests measures fixture loading performance.
func BenchmarkLoadAllTests(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := LoadAllTests()
		if err != nil {
			b.Fatal(err)
		}
	}
}

// ExampleLoadAllTests demonstrates loading the fixture suite and grouping
// it by the top-level subdirectory of each file's path; the fixture files
// sit directly in fixtures/, so every test falls in the "unknown" group.
func ExampleLoadAllTests() {
	tests, err := LoadAllTests()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	categories := make(map[string]int)
	for _, test := range tests {
		category := "unknown"
		for i, c := range test.File {
			if c == '/' || c == '\\' {
				category = test.File[:i]
				break
			}
		}
		categories[category]++
	}

	fmt.Printf("Loaded %d tests\n", len(tests))
	_ = categories
}
