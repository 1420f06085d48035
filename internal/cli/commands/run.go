package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ctv/internal/config"
	"ctv/internal/decode"
	"ctv/internal/execution"
	"ctv/internal/storage"
	"ctv/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config  *config.Config
	loader  *SuiteLoader
	storage storage.Storage
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, loader *SuiteLoader, st storage.Storage) *RunCommand {
	return &RunCommand{
		config:  cfg,
		loader:  loader,
		storage: st,
	}
}

// Execute runs the command. Failing tests do not fail the command; only a
// broken environment (simulator or fixture unavailable) does.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	entries, err := rc.loader.Load()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		color.Yellow("No tests to execute")
		return nil
	}

	logger := zap.L()
	out := cmd.OutOrStdout()

	runner := execution.NewRunner(rc.config.SimulatorCommand(), logger)
	renderer := ui.NewDiagnosticRenderer(out, decode.Default)
	cases := execution.NewCaseExecutor(runner, renderer, logger)
	suiteRunner := execution.NewSuiteRunner(cases, ui.NewReporter(out), logger)

	if rc.config.Flags.Progress {
		suiteRunner.SetProgress(ui.NewProgressBar(len(entries)))
	}

	results, tally, duration, err := suiteRunner.Run(cmd.Context(), entries)
	if err != nil {
		return err
	}

	logger.Debug("suite finished",
		zap.Int("passed", tally.Passed),
		zap.Int("failed", tally.Failed),
		zap.Duration("duration", duration),
	)

	if rc.config.Flags.NoSave {
		return nil
	}
	if err := rc.storage.Save(results, duration); err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}
	return nil
}
