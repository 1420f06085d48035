package cli

import "ctv/internal/config"

// Flags holds command-line flags
type Flags struct {
	ProjectPath string
	SuiteFile   string
	NameFilter  string
	NoSave      bool
	Progress    bool
	Verbose     bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ProjectPath: f.ProjectPath,
		SuiteFile:   f.SuiteFile,
		NameFilter:  f.NameFilter,
		NoSave:      f.NoSave,
		Progress:    f.Progress,
		Verbose:     f.Verbose,
	}
}
