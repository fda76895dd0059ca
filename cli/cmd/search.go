package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/open-cli-collective/prospector/cli/render"
	"github.com/open-cli-collective/prospector/cli/tui"
	"github.com/open-cli-collective/prospector/cli/wizard"
	"github.com/open-cli-collective/prospector/history"
	"github.com/open-cli-collective/prospector/sosl"
)

// SearchCommand returns the search command: the interactive wizard by
// default, or a one-shot search when --keyword is given.
func SearchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search records by keyword (interactive wizard by default)",
		Flags: append(CommonFlags(),
			TargetOrgFlag,
			TUIFlag,
			&cli.StringFlag{
				Name:    "object",
				Aliases: []string{"s"},
				Usage:   "Object name to search (one-shot mode)",
			},
			&cli.StringFlag{
				Name:    "keyword",
				Aliases: []string{"k"},
				Usage:   "Search keyword; enables one-shot mode",
			},
			&cli.StringFlag{
				Name:  "fields",
				Usage: "Comma-separated fields to return, or 'all-required'",
			},
			&cli.StringFlag{
				Name:  "limit",
				Usage: "Max records to return, or 'All' for no limit",
			},
		),
		Action: searchAction,
	}
}

func searchAction(c *cli.Context) error {
	e, err := setupEnv(c)
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	if c.String("keyword") == "" {
		if c.Bool("tui") {
			return tui.RunWizard(c.Context, e.client, e.logger, e.journal)
		}
		w := wizard.New(e.client, os.Stdin, os.Stdout, e.logger, e.journal)
		return w.Run(c.Context)
	}

	return oneShotSearch(c, e)
}

// oneShotSearch runs a single non-interactive search from flags, with the
// same query semantics as the wizard.
func oneShotSearch(c *cli.Context, e *env) error {
	alias, err := e.targetOrg(c)
	if err != nil {
		return err
	}
	object := c.String("object")
	if object == "" {
		return cli.Exit("--object is required with --keyword", 1)
	}

	limit, err := wizard.ParseLimit(c.String("limit"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	if !e.client.Authenticate(c.Context, alias) {
		return cli.Exit(fmt.Sprintf("Error: Unable to authenticate org %q.", alias), 1)
	}

	var fields []string
	if raw := c.String("fields"); raw != "" {
		fields = wizard.ParseFields(raw).Names
	}

	query := sosl.Query{
		Object:  object,
		Fields:  fields,
		Keyword: c.String("keyword"),
		Limit:   limit.N,
	}

	r, err := render.NewRenderer(c)
	if err != nil {
		return err
	}
	if r.Format() == render.FormatTable {
		wizard.ExecuteSearch(c.Context, e.client, query, alias, os.Stdout, e.logger, e.journal)
		return nil
	}

	// Structured output path: render the raw records.
	q, err := query.Build()
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	records, err := e.client.Search(c.Context, alias, q)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	if e.journal != nil {
		_ = e.journal.Append(history.Entry{
			At:       time.Now(),
			OrgAlias: alias,
			Object:   object,
			Keyword:  query.Keyword,
			Query:    q,
			Records:  len(records),
		})
	}
	return r.Structured(records)
}
