// Package cmd provides CLI commands for findingaid.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "findingaid",
	Short: "Flatten EAD finding aids into tables",
	Long: `Findingaid flattens EAD finding aids into one row per file.

Each row carries the series, subseries and file group the file sits under,
its title, date, inventory number and METS manifest link. Title lookups and
a per-file date listing can be exported alongside.

Examples:
  findingaid flatten -i inventory.xml -o inventory.tsv
  findingaid flatten -i inventory.xml --depth 3 --lookups lookups.json
  findingaid dates -i inventory.xml -o dates
  findingaid validate -i inventory.xml -v
  cat inventory.xml | findingaid flatten --format json --query '.[0]'`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.AddCommand(flattenCmd)
	rootCmd.AddCommand(datesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(profilesCmd)
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
