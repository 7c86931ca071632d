package app

import (
	"io"
	"strings"

	"mdelivery-zones/internal/config"
	"mdelivery-zones/internal/logx"
)

// NewLogger builds the service logger: JSON slog by default, zerolog console output for LOG_FORMAT=console.
func NewLogger(w io.Writer, cfg config.Log) logx.Logger {
	if strings.EqualFold(strings.TrimSpace(cfg.Format), "console") {
		return logx.NewConsole(w, cfg.Level)
	}
	return logx.NewJSON(w, cfg.Level)
}
