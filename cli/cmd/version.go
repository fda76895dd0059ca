package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/open-cli-collective/prospector/cli/render"
	"github.com/open-cli-collective/prospector/types"
)

// VersionResponse is the response for the version command.
type VersionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

// VersionCommand returns the version command. It must not invoke sfdx.
func VersionCommand(commit string) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version information",
		Flags: []cli.Flag{FormatFlag},
		Action: func(c *cli.Context) error {
			r, err := render.NewRenderer(c)
			if err != nil {
				return err
			}
			resp := VersionResponse{Version: types.Version, Commit: commit}
			if r.Format() == render.FormatTable {
				return r.Table(
					[]string{"Version", "Commit"},
					[][]string{{resp.Version, resp.Commit}},
				)
			}
			return r.Structured(resp)
		},
	}
}
