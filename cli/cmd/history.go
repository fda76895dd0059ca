package cmd

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/open-cli-collective/prospector/cli/render"
	"github.com/open-cli-collective/prospector/history"
)

// HistoryCommand returns the history command: past searches from the
// local journal, newest first.
func HistoryCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Show past searches",
		Flags: append(CommonFlags(),
			&cli.IntFlag{
				Name:  "last",
				Usage: "Show only the most recent N searches",
			},
		),
		Action: historyAction,
	}
}

func historyAction(c *cli.Context) error {
	e, err := setupEnv(c)
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	journal := e.journal
	if journal == nil {
		journal = history.NewJournal(e.cfg.HistoryFile)
	}
	entries, err := journal.ReadAll()
	if err != nil {
		return err
	}

	// Newest first.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	if last := c.Int("last"); last > 0 && last < len(entries) {
		entries = entries[:last]
	}

	r, err := render.NewRenderer(c)
	if err != nil {
		return err
	}
	if r.Format() != render.FormatTable {
		return r.Structured(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No search history.")
		return nil
	}
	rows := make([][]string, len(entries))
	for i, entry := range entries {
		rows[i] = []string{
			entry.At.Format("2006-01-02 15:04:05"),
			entry.OrgAlias,
			entry.Object,
			entry.Keyword,
			strconv.Itoa(entry.Records),
		}
	}
	return r.Table([]string{"Time", "Org", "Object", "Keyword", "Records"}, rows)
}
