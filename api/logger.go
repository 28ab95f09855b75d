package api

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/saeidalz13/battleship-sim/internal/config"
)

// NewLogger logs at debug level in dev and at info level otherwise.
func NewLogger(w io.Writer, stage string) *log.Logger {
	level := log.InfoLevel
	if stage == config.StageDev {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "battleship",
		ReportTimestamp: true,
	})
}
