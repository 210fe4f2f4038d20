package test

import (
	"os"

	logging "github.com/inconshreveable/log15"
)

// LogHandler picks the handler unit tests log to, from
// VOTRIFY_LOG_HANDLER: "null" (default) or "stderr".
func LogHandler() logging.Handler {
	handlers := map[string]func() logging.Handler{
		"null": func() logging.Handler {
			return logging.DiscardHandler()
		},
		"stderr": func() logging.Handler {
			return logging.CallerStackHandler("%+v", logging.StreamHandler(os.Stderr, logging.TerminalFormat()))
		},
	}

	handler := handlers["null"]
	if h, ok := handlers[os.Getenv("VOTRIFY_LOG_HANDLER")]; ok {
		handler = h
	}

	return handler()
}
