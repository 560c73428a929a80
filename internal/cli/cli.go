package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/crossforge/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// The placement override and extra toolchains fall back to the
// CROSSFORGE_OUTPUT_DIR and CROSSFORGE_TOOLCHAINS environment variables,
// each read exactly once here.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("crossforge", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
Crossforge - A cross-target build graph configurator.

Usage:
  crossforge [options] [MANIFEST_PATH]

Arguments:
  MANIFEST_PATH
    Path to a single .hcl manifest or a directory containing .hcl manifests.

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestFlag := flagSet.String("manifest", "", "Path to the manifest file or directory.")
	mFlag := flagSet.String("m", "", "Path to the manifest file or directory (shorthand).")
	targetsFlag := flagSet.String("targets", "", "Comma-separated subset of declared targets to request. Empty requests all.")
	outputDirFlag := flagSet.String("output-dir", "", "Shared output directory override. Falls back to CROSSFORGE_OUTPUT_DIR.")
	toolchainsFlag := flagSet.String("toolchains", "", "Comma-separated target ids with extra cross toolchains installed. Falls back to CROSSFORGE_TOOLCHAINS.")
	dumpFormatFlag := flagSet.String("dump-format", "text", "Graph dump format. Options: 'text' or 'json'.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *manifestFlag != "" {
		path = *manifestFlag
	} else if *mFlag != "" {
		path = *mFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Manifest path determined.", "path", path)

	if path == "" {
		slog.Debug("No manifest path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	dumpFormat := strings.ToLower(*dumpFormatFlag)
	if dumpFormat != "text" && dumpFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid dump-format: must be 'text' or 'json'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	outputDir := *outputDirFlag
	if outputDir == "" {
		outputDir = os.Getenv("CROSSFORGE_OUTPUT_DIR")
	}
	toolchains := *toolchainsFlag
	if toolchains == "" {
		toolchains = os.Getenv("CROSSFORGE_TOOLCHAINS")
	}

	config, err := app.NewConfig(app.Config{
		ManifestPath: path,
		Targets:      splitList(*targetsFlag),
		OutputDir:    outputDir,
		Toolchains:   splitList(toolchains),
		DumpFormat:   dumpFormat,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
