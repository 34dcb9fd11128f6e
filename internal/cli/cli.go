package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/netvizgo/internal/app"
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
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("netvizgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
netvizgo - Merge pairwise interaction networks and visualize the result.

Usage:
  netvizgo [options] [NETWORKS_DIR]

Arguments:
  NETWORKS_DIR
    Directory of whitespace-delimited network tables. Defaults to "Networks".

Options:
`)
		flagSet.PrintDefaults()
	}

	networksFlag := flagSet.String("networks", "", "Directory of input network files.")
	nFlag := flagSet.String("n", "", "Directory of input network files (shorthand).")
	outFlag := flagSet.String("out", "", "Output directory for artifacts. Defaults to the current directory.")
	configFlag := flagSet.String("config", "", "Path to an optional HCL config file.")
	sourceColFlag := flagSet.String("source-col", "", "Name of the source endpoint column.")
	targetColFlag := flagSet.String("target-col", "", "Name of the target endpoint column.")
	undirectedFlag := flagSet.Bool("undirected", false, "Treat (B,A) as a duplicate of (A,B) when deduplicating.")
	noRenderFlag := flagSet.Bool("no-render", false, "Skip the HTML visualization, only write the edge-list artifacts.")
	annotationsFlag := flagSet.String("annotations", "", "Path to an optional YAML node-annotations file.")
	servePortFlag := flagSet.Int("serve-port", 0, "Port to serve the rendered page on after the run. 0 is disabled.")
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
	if *networksFlag != "" {
		path = *networksFlag
	} else if *nFlag != "" {
		path = *nFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Networks path determined.", "path", path)

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

	config, err := app.NewConfig(app.Config{
		NetworksPath:    path,
		OutputDir:       *outFlag,
		ConfigPath:      *configFlag,
		SourceCol:       *sourceColFlag,
		TargetCol:       *targetColFlag,
		Undirected:      *undirectedFlag,
		NoRender:        *noRenderFlag,
		AnnotationsPath: *annotationsFlag,
		ServePort:       *servePortFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
