package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/open-cli-collective/prospector/cli/wizard"
	"github.com/open-cli-collective/prospector/history"
	"github.com/open-cli-collective/prospector/log"
	"github.com/open-cli-collective/prospector/sf"
	"github.com/open-cli-collective/prospector/sosl"
)

// phase is the coarse TUI state on top of the wizard step machine.
type phase int

const (
	phaseCollect phase = iota
	phaseAuth
	phaseSearch
	phaseDone
)

// Farewell is printed when the session is interrupted.
const Farewell = "Exiting. Goodbye!"

type authResultMsg struct {
	ok bool
}

type searchDoneMsg struct {
	output string
}

// WizardModel is the Bubble Tea model for the interactive search wizard.
// It drives the same Session/Apply state machine as the prompt wizard;
// only the input surface differs.
type WizardModel struct {
	ctx     context.Context
	client  *sf.Client
	logger  *log.Logger
	journal *history.Journal

	session wizard.Session
	phase   phase
	input   textinput.Model
	spin    spinner.Model
	status  string
	result  string
}

// NewWizardModel creates the wizard model.
func NewWizardModel(ctx context.Context, client *sf.Client, logger *log.Logger, journal *history.Journal) WizardModel {
	input := textinput.New()
	input.Prompt = ""
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = PromptStyle

	return WizardModel{
		ctx:     ctx,
		client:  client,
		logger:  logger,
		journal: journal,
		input:   input,
		spin:    spin,
	}
}

// RunWizard runs the TUI wizard to completion.
func RunWizard(ctx context.Context, client *sf.Client, logger *log.Logger, journal *history.Journal) error {
	_, err := tea.NewProgram(NewWizardModel(ctx, client, logger, journal)).Run()
	return err
}

// Init implements tea.Model.
func (m WizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			m.result = Farewell + "\n"
			m.phase = phaseDone
			return m, tea.Quit
		}
		if m.phase == phaseCollect && msg.Type == tea.KeyEnter {
			return m.submit()
		}

	case authResultMsg:
		if msg.ok {
			m.session.Authenticated = true
			m.status = ""
		} else {
			m.session = m.session.ClearOrgAlias()
			m.status = "Error: Unable to authenticate. Try again."
		}
		return m.advance()

	case searchDoneMsg:
		m.result = msg.output
		m.phase = phaseDone
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit applies the current input line to the session.
func (m WizardModel) submit() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	m.input.Reset()

	next, err := wizard.Apply(m.session, m.session.NextStep(), value)
	if errors.Is(err, wizard.ErrInvalidLimit) {
		m.status = fmt.Sprintf("Error: %v", err)
		return m, nil
	}
	m.session = next
	m.status = ""
	return m.advance()
}

// advance dispatches whatever the next step requires: another prompt, an
// authentication check, or the search itself.
func (m WizardModel) advance() (tea.Model, tea.Cmd) {
	switch m.session.NextStep() {
	case wizard.StepAuthenticate:
		m.phase = phaseAuth
		return m, tea.Batch(m.spin.Tick, m.authCmd())
	case wizard.StepExecute:
		m.phase = phaseSearch
		return m, tea.Batch(m.spin.Tick, m.searchCmd())
	default:
		m.phase = phaseCollect
		return m, nil
	}
}

func (m WizardModel) authCmd() tea.Cmd {
	alias := *m.session.OrgAlias
	return func() tea.Msg {
		return authResultMsg{ok: m.client.Authenticate(m.ctx, alias)}
	}
}

func (m WizardModel) searchCmd() tea.Cmd {
	sess := m.session
	query := sosl.Query{
		Object:  *sess.ObjectName,
		Fields:  sess.Fields.Names,
		Keyword: *sess.Keyword,
		Limit:   sess.Limit.N,
	}
	alias := *sess.OrgAlias
	return func() tea.Msg {
		return searchDoneMsg{
			output: wizard.SearchOutput(m.ctx, m.client, query, alias, m.logger, m.journal),
		}
	}
}

// View implements tea.Model.
func (m WizardModel) View() string {
	switch m.phase {
	case phaseDone:
		return m.result

	case phaseAuth:
		return fmt.Sprintf("%s authenticating...\n", m.spin.View())

	case phaseSearch:
		return fmt.Sprintf("%s Searching...\n", m.spin.View())
	}

	title := TitleStyle.Render("Welcome to Prospector!")
	prompt := PromptStyle.Render(promptFor(m.session.NextStep()))
	body := fmt.Sprintf("%s\n%s", prompt, m.input.View())
	if m.status != "" {
		body = fmt.Sprintf("%s\n%s", ErrorStyle.Render(m.status), body)
	}
	help := HelpStyle.Render("Enter to confirm · type 'start over' to restart · Ctrl+C to quit")
	return title + "\n" + BoxStyle.Render(body) + "\n" + help + "\n"
}

// promptFor returns the prompt text for a collection step.
func promptFor(step wizard.Step) string {
	switch step {
	case wizard.StepOrgAlias:
		return wizard.PromptOrgAlias
	case wizard.StepObjectName:
		return wizard.PromptObjectName
	case wizard.StepFields:
		return wizard.PromptFields
	case wizard.StepKeyword:
		return wizard.PromptKeyword
	case wizard.StepLimit:
		return wizard.PromptLimit
	default:
		return ""
	}
}
