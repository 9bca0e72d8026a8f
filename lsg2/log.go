package lsg2

import (
	"os"

	"github.com/rs/zerolog"
)

// logger is the package-level, disabled-by-default structured logger.
// It plays the same role as the teacher's dbg.Debug-gated dbg.Println:
// silent unless explicitly turned on, never written to on encode/decode's
// hot per-sample loops, and restricted to segment- and container-boundary
// events.
var logger = zerolog.New(os.Stderr).Level(zerolog.Disabled).With().Timestamp().Logger()

// SetLogger replaces the package-level logger, e.g. to redirect output or
// change its level. The zero value of zerolog.Logger discards everything.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Enable turns on debug-level logging to stderr, the structured
// equivalent of setting the teacher's dbg.Debug = true.
func Enable() {
	logger = logger.Level(zerolog.DebugLevel)
}

// Disable silences the package-level logger.
func Disable() {
	logger = logger.Level(zerolog.Disabled)
}
