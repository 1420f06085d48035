package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath  string
	ReferenceDir string

	// Simulator settings
	Java          string
	SimulatorJar  string
	SimulatorArgs []string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	ProjectPath string
	SuiteFile   string
	NameFilter  string
	NoSave      bool
	Progress    bool
	Verbose     bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		ReferenceDir:   DefaultReferenceDir,
		Java:           DefaultJava,
		SimulatorJar:   DefaultSimulatorJar,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
	// Copy default args so callers can't mutate the package value
	cfg.SimulatorArgs = make([]string, len(DefaultSimulatorArgs))
	copy(cfg.SimulatorArgs, DefaultSimulatorArgs)
	return cfg
}

// Load creates a config, applies flags and then environment overrides.
// A .env file in the project directory is loaded first if present; variables
// already set in the environment win over the file.
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags

	if flags.ProjectPath != "" {
		cfg.ProjectPath = flags.ProjectPath
	}

	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(filepath.Join(cfg.ProjectPath, ".env"))

	if v := os.Getenv(EnvJava); v != "" {
		cfg.Java = v
	}
	if v := os.Getenv(EnvSimulatorJar); v != "" {
		cfg.SimulatorJar = v
	}

	return cfg
}

// GetSimulatorJar returns the simulator jar path; relative paths resolve against the project
func (c *Config) GetSimulatorJar() string {
	if filepath.IsAbs(c.SimulatorJar) {
		return c.SimulatorJar
	}
	return filepath.Join(c.ProjectPath, c.SimulatorJar)
}

// SimulatorCommand returns the program and leading arguments used to launch
// the simulator. The circuit path is appended by the caller.
func (c *Config) SimulatorCommand() []string {
	cmd := []string{c.Java, "-jar", c.GetSimulatorJar()}
	return append(cmd, c.SimulatorArgs...)
}

// CircuitPath returns the circuit file for a test name
func (c *Config) CircuitPath(name string) string {
	return filepath.Join(c.ProjectPath, name+CircuitExt)
}

// ReferencePath returns the reference trace for a test name
func (c *Config) ReferencePath(name string) string {
	return filepath.Join(c.ProjectPath, c.ReferenceDir, name+TraceExt)
}

// GetOutputPath returns the full path to the output JSON file (under project so run and faills use the same file).
// Resolves to an absolute path so run and faills always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
