package commands

import (
	"github.com/spf13/cobra"

	"ctv/internal/config"
	"ctv/internal/storage"
	"ctv/internal/ui"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	config  *config.Config
	storage storage.Storage
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(cfg *config.Config, st storage.Storage) *StatsCommand {
	return &StatsCommand{
		config:  cfg,
		storage: st,
	}
}

// Execute runs the command
func (sc *StatsCommand) Execute(cmd *cobra.Command, args []string) error {
	results, err := sc.storage.Load()
	if err != nil {
		return err
	}

	ui.NewFormatter(sc.config, cmd.OutOrStdout()).PrintMetaStats(results)
	return nil
}
