// Package main provides the prospector CLI entrypoint.
//
// Prospector is an interactive front-end over the Salesforce sfdx CLI:
// it authenticates against an org, lists and describes schema objects,
// and runs keyword searches, rendering results as tables.
//
// Usage:
//
//	prospector <command> [options]
//
// All user-facing errors are printed; no exit codes beyond 0/1 are
// defined.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/open-cli-collective/prospector/cli/cmd"
	"github.com/open-cli-collective/prospector/types"
)

// commit is set via ldflags at build time.
var commit = "unknown"

func main() {
	app := &cli.App{
		Name:           "prospector",
		Usage:          "Keyword record search for Salesforce orgs",
		Version:        fmt.Sprintf("%s (commit: %s)", types.Version, commit),
		ExitErrHandler: exitErrHandler,
		Commands: []*cli.Command{
			cmd.SearchCommand(),
			cmd.AuthCommand(),
			cmd.ObjectsCommand(),
			cmd.DescribeCommand(),
			cmd.HistoryCommand(),
			cmd.VersionCommand(commit),
		},
	}

	if err := app.Run(os.Args); err != nil {
		// ExitErrHandler already handled cli.ExitCoder errors.
		os.Exit(1)
	}
}

// exitErrHandler preserves exit codes from cli.Exit() and prints
// unexpected errors once.
func exitErrHandler(_ *cli.Context, err error) {
	if err == nil {
		return
	}

	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		code := exitCoder.ExitCode()
		msg := exitCoder.Error()
		if msg != "" && msg != fmt.Sprintf("exit status %d", code) {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(code)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
