package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		slog.Error("notegen failed to run", "error", err)
		os.Exit(1)
	}
}
