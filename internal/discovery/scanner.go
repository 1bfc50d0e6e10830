package discovery

import (
	"os"
	"path/filepath"
)

// DiscoveryError reports a configured group directory that is missing or
// unreadable. It aborts the run before any test executes.
type DiscoveryError struct {
	Path string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return "cannot read group directory " + e.Path + ": " + e.Err.Error()
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// Scanner discovers test case files inside suite group directories
type Scanner struct{}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Discover lists the direct entries of root/<group> for every group, in
// group order, and returns their full paths. Entries are not filtered by
// extension or content and subdirectories are not recursed into. Entry
// order within a group follows the directory listing; callers must not
// depend on it beyond "all entries present".
func (s *Scanner) Discover(root string, groups []string) ([]string, error) {
	var paths []string

	for _, group := range groups {
		dir := filepath.Join(root, group)
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, &DiscoveryError{Path: dir, Err: err}
		}
		for _, entry := range entries {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	return paths, nil
}
