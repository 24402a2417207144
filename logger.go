package linked_list

import (
	"log/slog"
	"os"
)

var logLevel = new(slog.LevelVar)

// ConfigureLogging installs a text logger on stdout as the slog default,
// at the level named by LINKED_LIST_LOG_LEVEL (DEBUG, INFO, WARN or ERROR).
// It defaults to Info. The package never calls it itself; an application
// calls it once at startup, before creating lists, to opt in.
func ConfigureLogging() {
	logLevel.Set(slog.LevelInfo)

	switch os.Getenv("LINKED_LIST_LOG_LEVEL") {
	case "DEBUG":
		logLevel.Set(slog.LevelDebug)
	case "WARN":
		logLevel.Set(slog.LevelWarn)
	case "ERROR":
		logLevel.Set(slog.LevelError)
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// SetLogLevel changes the level of the logger installed by ConfigureLogging.
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}
