package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ctv/internal/config"
	"ctv/internal/suite"
	"ctv/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config  *config.Config
	loader  *SuiteLoader
	scanner *suite.Scanner
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, loader *SuiteLoader, scanner *suite.Scanner) *ListCommand {
	return &ListCommand{
		config:  cfg,
		loader:  loader,
		scanner: scanner,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	entries, err := lc.loader.Load()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	ui.NewFormatter(lc.config, cmd.OutOrStdout()).PrintSuiteList(lc.scanner.Scan(entries))
	return nil
}
