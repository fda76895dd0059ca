package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/open-cli-collective/prospector/cli/config"
	"github.com/open-cli-collective/prospector/history"
	"github.com/open-cli-collective/prospector/log"
	"github.com/open-cli-collective/prospector/sf"
)

// env bundles the wired collaborators every command action needs.
// Precedence throughout: flag, then config file, then built-in default.
type env struct {
	cfg     *config.Config
	logger  *log.Logger
	client  *sf.Client
	journal *history.Journal // nil when history is disabled
}

// setupEnv loads configuration and wires the logger, runner, client, and
// history journal for one command invocation.
func setupEnv(c *cli.Context) (*env, error) {
	var cfg *config.Config
	var err error
	if path := c.String("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	logger := log.NewLogger(firstNonEmpty(c.String("log-file"), cfg.LogFile, log.DefaultPath))

	timeout := c.Duration("timeout")
	if timeout <= 0 {
		timeout = cfg.Timeout.Duration
	}
	runner := sf.NewExecRunner(timeout, logger)
	client := sf.NewClient(firstNonEmpty(c.String("sf-bin"), cfg.SFBin), runner, logger)

	var journal *history.Journal
	if !cfg.NoHistory {
		journal = history.NewJournal(cfg.HistoryFile)
	}

	return &env{cfg: cfg, logger: logger, client: client, journal: journal}, nil
}

// targetOrg resolves the org alias from flag or config.
func (e *env) targetOrg(c *cli.Context) (string, error) {
	alias := firstNonEmpty(c.String("target-org"), e.cfg.TargetOrg)
	if alias == "" {
		return "", cli.Exit("--target-org is required (flag or config file)", 1)
	}
	return alias, nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
