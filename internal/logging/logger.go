package logging

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared diagnostic logger for speckit. It writes to stderr
// so status lines on stdout stay machine-friendly. The default level is
// warn; the --debug flag lowers it to debug.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: false,
	Level:           clog.WarnLevel,
})

// SetDebug toggles debug-level output on the shared logger.
func SetDebug(enabled bool) {
	if enabled {
		Logger.SetLevel(clog.DebugLevel)
	} else {
		Logger.SetLevel(clog.WarnLevel)
	}
}
