package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"btr/internal/config"
	"btr/internal/storage"
	"btr/internal/ui"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config    *config.Config
	history   *storage.HistoryStore
	formatter *ui.Formatter
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, history *storage.HistoryStore, formatter *ui.Formatter) *HistoryCommand {
	return &HistoryCommand{
		config:    cfg,
		history:   history,
		formatter: formatter,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	if !hc.history.Enabled() {
		return errors.New("history database not configured (set BTR_HISTORY_DSN)")
	}

	limit := hc.config.Flags.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, err := hc.history.Recent(limit)
	if err != nil {
		return err
	}

	hc.formatter.PrintHistory(entries)
	return nil
}
