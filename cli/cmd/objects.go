package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/open-cli-collective/prospector/cli/render"
)

// ObjectsCommand returns the objects command: list org sobjects with an
// optional substring filter.
func ObjectsCommand() *cli.Command {
	return &cli.Command{
		Name:      "objects",
		Usage:     "List objects available in the org",
		ArgsUsage: "[filter]",
		Flags:     append(CommonFlags(), TargetOrgFlag),
		Action:    objectsAction,
	}
}

func objectsAction(c *cli.Context) error {
	e, err := setupEnv(c)
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	alias, err := e.targetOrg(c)
	if err != nil {
		return err
	}

	names := e.client.ListObjects(c.Context, alias)
	if filter := c.Args().First(); filter != "" {
		var filtered []string
		for _, name := range names {
			if strings.Contains(strings.ToLower(name), strings.ToLower(filter)) {
				filtered = append(filtered, name)
			}
		}
		names = filtered
	}

	r, err := render.NewRenderer(c)
	if err != nil {
		return err
	}
	if r.Format() != render.FormatTable {
		return r.Structured(names)
	}

	if len(names) == 0 {
		fmt.Println("No objects found.")
		return nil
	}
	rows := make([][]string, len(names))
	for i, name := range names {
		rows[i] = []string{name}
	}
	return r.Table([]string{"Object"}, rows)
}
