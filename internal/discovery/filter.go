package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters test case files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters test paths by file name pattern using wildcard
// matching. Supports patterns like "arith_*.js" or "*loop*"; a pattern
// without wildcards matches as a substring.
func (f *Filter) FilterByName(tests []string, pattern string) []string {
	if pattern == "" {
		return tests
	}

	var filtered []string
	for _, test := range tests {
		name := filepath.Base(test)

		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			filtered = append(filtered, test)
			continue
		}

		if strings.ContainsAny(pattern, "*?") {
			// Fall back to a looser match for patterns like "*loop*":
			// every literal segment must appear in the name.
			parts := strings.Split(pattern, "*")
			ok := false
			for _, part := range parts {
				if part == "" {
					continue
				}
				ok = true
				if !strings.Contains(name, part) {
					ok = false
					break
				}
			}
			if ok {
				filtered = append(filtered, test)
			}
			continue
		}

		if strings.Contains(name, pattern) {
			filtered = append(filtered, test)
		}
	}

	return filtered
}
