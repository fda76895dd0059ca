package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/open-cli-collective/prospector/cli/render"
	"github.com/open-cli-collective/prospector/types"
)

// DescribeCommand returns the describe command: the field table of one
// object, with the required-field summary.
func DescribeCommand() *cli.Command {
	return &cli.Command{
		Name:      "describe",
		Usage:     "Show the fields of an object",
		ArgsUsage: "<object>",
		Flags:     append(CommonFlags(), TargetOrgFlag),
		Action:    describeAction,
	}
}

func describeAction(c *cli.Context) error {
	e, err := setupEnv(c)
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	alias, err := e.targetOrg(c)
	if err != nil {
		return err
	}
	object := c.Args().First()
	if object == "" {
		return cli.Exit("an object name is required", 1)
	}

	fields, err := e.client.DescribeObject(c.Context, alias, object)
	if err != nil {
		return cli.Exit("Error: Unable to describe the object.", 1)
	}

	r, err := render.NewRenderer(c)
	if err != nil {
		return err
	}
	if r.Format() != render.FormatTable {
		return r.Structured(fields)
	}

	fmt.Println("\nAvailable Fields:")
	if err := r.Fields(fields); err != nil {
		return err
	}
	if required := types.RequiredFieldNames(fields); len(required) > 0 {
		fmt.Printf("\nRequired fields: %s\n", strings.Join(required, ", "))
	}
	return nil
}
