// Package cmd provides CLI commands for the prospector binary.
package cmd

import "github.com/urfave/cli/v2"

// Shared flags.
var (
	// FormatFlag selects output format: json, table, yaml.
	FormatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format: json, table, yaml",
	}

	// TargetOrgFlag names the org alias to run against.
	TargetOrgFlag = &cli.StringFlag{
		Name:    "target-org",
		Aliases: []string{"o"},
		Usage:   "Authenticated org alias",
	}

	// SFBinFlag overrides the sfdx executable.
	SFBinFlag = &cli.StringFlag{
		Name:  "sf-bin",
		Usage: "Path to the sfdx executable",
	}

	// TimeoutFlag bounds a single sfdx invocation.
	TimeoutFlag = &cli.DurationFlag{
		Name:  "timeout",
		Usage: "Timeout for a single sfdx invocation (default 30s)",
	}

	// ConfigFlag names an explicit config file.
	ConfigFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to prospector.yaml",
	}

	// LogFileFlag overrides the log sink path.
	LogFileFlag = &cli.StringFlag{
		Name:  "log-file",
		Usage: "Path to the append-only log file",
	}

	// TUIFlag enables the Bubble Tea wizard. Search only.
	TUIFlag = &cli.BoolFlag{
		Name:  "tui",
		Usage: "Run the wizard as an interactive TUI (search only)",
	}
)

// CommonFlags returns the flags every command accepts.
func CommonFlags() []cli.Flag {
	return []cli.Flag{
		FormatFlag,
		SFBinFlag,
		TimeoutFlag,
		ConfigFlag,
		LogFileFlag,
	}
}
