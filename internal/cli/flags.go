package cli

import "btr/internal/config"

// Flags holds command-line flags
type Flags struct {
	SuiteDir   string
	Groups     []string
	Subject    string
	Workers    int
	NameFilter string
	Report     bool
	Limit      int
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		SuiteDir:   f.SuiteDir,
		Groups:     f.Groups,
		Subject:    f.Subject,
		Workers:    f.Workers,
		NameFilter: f.NameFilter,
		Report:     f.Report,
		Limit:      f.Limit,
	}
}
