// Command dividi runs the Dividi expense core from the terminal: it nets
// group debts, runs the split allocator, and emits payment payloads for
// any catalog rail. It works on plain JSON files supplied by the caller;
// real persistence belongs to the surrounding system.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dividi/dividi/pkg/logging"
)

var logLevel string

func main() {
	root := &cobra.Command{
		Use:   "dividi",
		Short: "split shared expenses and settle them over regional payment rails",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logLevel != "" {
				logging.SetupWithLevel(logging.ParseLevel(logLevel))
			} else {
				logging.Setup()
			}
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (default from LOG_LEVEL)")

	root.AddCommand(debtsCmd())
	root.AddCommand(splitCmd())
	root.AddCommand(paycodeCmd())
	root.AddCommand(railsCmd())
	root.AddCommand(sampleCmd())

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
