package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/open-cli-collective/prospector/cli/render"
)

// AuthCommand returns the auth command: list authenticated orgs, or check
// a specific alias.
func AuthCommand() *cli.Command {
	return &cli.Command{
		Name:      "auth",
		Usage:     "List authenticated orgs, or check one alias",
		ArgsUsage: "[alias]",
		Flags:     CommonFlags(),
		Action:    authAction,
	}
}

func authAction(c *cli.Context) error {
	e, err := setupEnv(c)
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	if alias := c.Args().First(); alias != "" {
		if !e.client.Authenticate(c.Context, alias) {
			return cli.Exit(fmt.Sprintf("Error: Unable to authenticate org %q.", alias), 1)
		}
		fmt.Printf("Org %q is authenticated.\n", alias)
		return nil
	}

	orgs := e.client.AuthenticatedOrgs(c.Context)

	r, err := render.NewRenderer(c)
	if err != nil {
		return err
	}
	if r.Format() != render.FormatTable {
		return r.Structured(orgs)
	}

	if len(orgs) == 0 {
		fmt.Println("No authenticated orgs.")
		return nil
	}
	rows := make([][]string, len(orgs))
	for i, org := range orgs {
		mark := ""
		if org.IsDefault {
			mark = "✓"
		}
		rows[i] = []string{org.Alias, org.Username, org.InstanceURL, mark}
	}
	return r.Table([]string{"Alias", "Username", "Instance URL", "Default"}, rows)
}
