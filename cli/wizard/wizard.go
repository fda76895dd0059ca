package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/open-cli-collective/prospector/cli/render"
	"github.com/open-cli-collective/prospector/history"
	"github.com/open-cli-collective/prospector/log"
	"github.com/open-cli-collective/prospector/sf"
	"github.com/open-cli-collective/prospector/sosl"
)

// Prompt texts, one per collection step.
const (
	PromptOrgAlias   = "Enter Salesforce org alias (e.g., MyOrg): "
	PromptObjectName = "Enter the object name (or part of it) to search: "
	PromptFields     = "Enter fields to query (comma-separated, or 'all-required'): "
	PromptKeyword    = "Enter keyword to search: "
	PromptLimit      = "Enter the number of records to return (or 'All' for no limit): "
)

// Wizard drives one interactive search session against an org.
type Wizard struct {
	client  *sf.Client
	prompt  *Prompter
	out     io.Writer
	logger  *log.Logger
	journal *history.Journal // nil disables history recording
}

// New creates a wizard prompting on in/out.
func New(client *sf.Client, in io.Reader, out io.Writer, logger *log.Logger, journal *history.Journal) *Wizard {
	return &Wizard{
		client:  client,
		prompt:  NewPrompter(in, out),
		out:     out,
		logger:  logger,
		journal: journal,
	}
}

// Run walks the session state machine to completion. The session is
// single-shot: one search (successful or failed) ends it, apart from the
// internal "start over" loop. An interrupt at any prompt prints a
// farewell and returns nil.
func (w *Wizard) Run(ctx context.Context) error {
	defer w.prompt.Close()
	sess := Session{}

	for {
		switch step := sess.NextStep(); step {
		case StepOrgAlias:
			fmt.Fprintln(w.out, "\nWelcome to Prospector!")
			next, done := w.collect(&sess, step, PromptOrgAlias)
			if done {
				return nil
			}
			sess = next

		case StepAuthenticate:
			if !w.client.Authenticate(ctx, *sess.OrgAlias) {
				fmt.Fprintln(w.out, "Error: Unable to authenticate. Try again.")
				sess = sess.ClearOrgAlias()
				continue
			}
			sess.Authenticated = true

		case StepObjectName:
			next, done := w.collect(&sess, step, PromptObjectName)
			if done {
				return nil
			}
			sess = next

		case StepFields:
			next, done := w.collect(&sess, step, PromptFields)
			if done {
				return nil
			}
			sess = next

		case StepKeyword:
			next, done := w.collect(&sess, step, PromptKeyword)
			if done {
				return nil
			}
			sess = next

		case StepLimit:
			next, done := w.collect(&sess, step, PromptLimit)
			if done {
				return nil
			}
			sess = next

		case StepExecute:
			w.execute(ctx, sess)
			return nil
		}
	}
}

// collect prompts for one step and applies the answer. The bool result
// is true when the session ended at the prompt (interrupt or EOF).
func (w *Wizard) collect(sess *Session, step Step, prompt string) (Session, bool) {
	input, err := w.prompt.Ask(prompt)
	if err != nil {
		fmt.Fprintln(w.out, "\nExiting. Goodbye!")
		return Session{}, true
	}

	next, err := Apply(*sess, step, input)
	if errors.Is(err, ErrInvalidLimit) {
		fmt.Fprintf(w.out, "Error: %v\n", err)
		return *sess, false
	}
	return next, false
}

// execute runs the collected search and renders the outcome.
func (w *Wizard) execute(ctx context.Context, sess Session) {
	fmt.Fprintln(w.out, "\nSearching...")
	fmt.Fprintln(w.out)

	query := sosl.Query{
		Object:  *sess.ObjectName,
		Fields:  sess.Fields.Names,
		Keyword: *sess.Keyword,
		Limit:   sess.Limit.N,
	}
	ExecuteSearch(ctx, w.client, query, *sess.OrgAlias, w.out, w.logger, w.journal)
}

// ExecuteSearch builds, runs, and renders one search. Shared by the
// prompt wizard, the TUI wizard, and one-shot search invocations.
func ExecuteSearch(ctx context.Context, client *sf.Client, query sosl.Query, orgAlias string, out io.Writer, logger *log.Logger, journal *history.Journal) {
	fmt.Fprint(out, SearchOutput(ctx, client, query, orgAlias, logger, journal))
}

// SearchOutput returns the rendered result of one search as displayable
// text: a record table, "No records found.", or an error message.
func SearchOutput(ctx context.Context, client *sf.Client, query sosl.Query, orgAlias string, logger *log.Logger, journal *history.Journal) string {
	q, err := query.Build()
	if err != nil {
		// Only ErrEmptyKeyword reaches here.
		return fmt.Sprintf("Error: %v\n", err)
	}

	records, err := client.Search(ctx, orgAlias, q)
	if err != nil {
		return searchErrorMessage(err)
	}

	recordHistory(logger, journal, history.Entry{
		At:       time.Now(),
		OrgAlias: orgAlias,
		Object:   query.Object,
		Keyword:  query.Keyword,
		Query:    q,
		Records:  len(records),
	})

	if len(records) == 0 {
		return "No records found.\n"
	}

	var b strings.Builder
	r := render.NewRendererWithWriter(render.FormatTable, &b)
	if err := r.Records(query.EffectiveFields(), records); err != nil {
		return fmt.Sprintf("Error: %v\n", err)
	}
	return b.String()
}

// searchErrorMessage maps a search failure to its user-facing message.
func searchErrorMessage(err error) string {
	switch {
	case errors.Is(err, sf.ErrTimeout):
		return "Error: Command timed out.\n"
	case errors.Is(err, sf.ErrMalformedResponse):
		return "Error: Unable to parse search results.\n"
	default:
		var cmdErr *sf.CommandError
		if errors.As(err, &cmdErr) && cmdErr.Stderr != "" {
			return fmt.Sprintf("Error: %s\n", cmdErr.Stderr)
		}
		return fmt.Sprintf("Error: %v\n", err)
	}
}

// recordHistory appends the executed search to the journal. Journal
// failures are logged, never surfaced: history is best-effort.
func recordHistory(logger *log.Logger, journal *history.Journal, entry history.Entry) {
	if journal == nil {
		return
	}
	if err := journal.Append(entry); err != nil {
		logger.Warn("history append failed", map[string]any{
			"error": err.Error(),
		})
	}
}
