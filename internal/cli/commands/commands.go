package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ctv/internal/cli"
	"ctv/internal/config"
	"ctv/internal/decode"
	"ctv/internal/domain"
	"ctv/internal/storage"
	"ctv/internal/suite"
	"ctv/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run    *RunCommand
	List   *ListCommand
	Faills *FaillsCommand
	Stats  *StatsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	loader := NewSuiteLoader(cfg, suite.NewFilter())
	scanner := suite.NewScanner()
	jsonStorage := storage.NewJSONStorage(cfg)
	errorViewer := ui.NewErrorViewer(jsonStorage, decode.Default)

	return &Commands{
		Run:    NewRunCommand(cfg, loader, jsonStorage),
		List:   NewListCommand(cfg, loader, scanner),
		Faills: NewFaillsCommand(jsonStorage, errorViewer),
		Stats:  NewStatsCommand(cfg, jsonStorage),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().StringVarP(&flags.ProjectPath, "project", "C", "", "Directory holding the circuit files and reference_output/")
	rootCmd.PersistentFlags().StringVarP(&flags.SuiteFile, "suite", "s", "", "YAML suite file to use instead of the built-in test table")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		*cfg = *config.Load(flags.ToConfigFlags())
		logger, err := newLogger(flags.Verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		zap.ReplaceGlobals(logger)
		return nil
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	}

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Verify circuits against their reference traces",
		Long:  "Run every declared circuit through the simulator, compare its trace with the reference trace and print a per-test report",
		Args:  cobra.NoArgs,
		RunE:  c.Run.Execute,
	}
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by description (supports wildcards, e.g. 'ALU*' or '*shift*')")
	runCmd.Flags().BoolVar(&flags.NoSave, "no-save", false, "Do not write the results file used by faills and stats")
	runCmd.Flags().BoolVarP(&flags.Progress, "progress", "p", false, "Show a progress bar on stderr")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List declared tests",
		Long:  "List the declared tests without running them, marking missing circuit or reference files",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by description (supports wildcards, e.g. 'ALU*' or '*shift*')")
	rootCmd.AddCommand(listCmd)

	// Faills command
	faillsCmd := &cobra.Command{
		Use:   "faills",
		Short: "View failing traces interactively",
		Long:  "Browse the failing tests of the last run with their decoded comparison tables",
		Args:  cobra.NoArgs,
		RunE:  c.Faills.Execute,
	}
	rootCmd.AddCommand(faillsCmd)

	// Stats command
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show statistics of the last run",
		Args:  cobra.NoArgs,
		RunE:  c.Stats.Execute,
	}
	rootCmd.AddCommand(statsCmd)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.Encoding = "console"
	zapConfig.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zapConfig.Build()
}

// SuiteLoader resolves the entries to run: the suite file if one is given,
// otherwise the built-in table, narrowed by the name filter.
type SuiteLoader struct {
	config *config.Config
	filter *suite.Filter
}

// NewSuiteLoader creates a new SuiteLoader
func NewSuiteLoader(cfg *config.Config, filter *suite.Filter) *SuiteLoader {
	return &SuiteLoader{config: cfg, filter: filter}
}

// Load returns the entries selected by the current flags
func (l *SuiteLoader) Load() ([]domain.Entry, error) {
	entries := suite.Default(l.config)
	if l.config.Flags.SuiteFile != "" {
		var err error
		entries, err = suite.Load(l.config, l.config.Flags.SuiteFile)
		if err != nil {
			return nil, err
		}
	}
	return l.filter.FilterByName(entries, l.config.Flags.NameFilter), nil
}
