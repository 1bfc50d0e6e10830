package discovery

import "testing"

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []string{
		"test_suite/basic/arith_add.js",
		"test_suite/basic/arith_sub.js",
		"test_suite/basic/loop_while.js",
		"test_suite/objects/fields.js",
	}

	cases := []struct {
		name     string
		pattern  string
		expected int
	}{
		{name: "empty pattern returns all", pattern: "", expected: 4},
		{name: "wildcard prefix", pattern: "arith_*", expected: 2},
		{name: "wildcard both sides", pattern: "*loop*", expected: 1},
		{name: "plain substring", pattern: "fields", expected: 1},
		{name: "no match", pattern: "*missing*", expected: 0},
		{name: "exact name", pattern: "arith_add.js", expected: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := filter.FilterByName(tests, tc.pattern)
			if len(got) != tc.expected {
				t.Errorf("pattern %q: expected %d matches, got %d (%v)", tc.pattern, tc.expected, len(got), got)
			}
		})
	}

	t.Run("preserves input order", func(t *testing.T) {
		got := filter.FilterByName(tests, "arith_*")
		if len(got) == 2 && (got[0] != tests[0] || got[1] != tests[1]) {
			t.Errorf("filtered order differs from input order: %v", got)
		}
	})
}
