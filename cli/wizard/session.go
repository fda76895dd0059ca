// Package wizard implements the interactive search session: a fixed
// sequence of collection steps feeding one search execution.
package wizard

import (
	"errors"
	"strconv"
	"strings"
)

// Step identifies one state of the session state machine.
type Step int

// Steps in fixed linear order. Each collection step is gated by whether
// the session value it produces is already populated: a populated value
// is never re-derived on replay.
const (
	StepOrgAlias Step = iota
	StepAuthenticate
	StepObjectName
	StepFields
	StepKeyword
	StepLimit
	StepExecute
)

// StartOverInput restarts the whole session when entered at any prompt.
const StartOverInput = "start over"

// ErrInvalidLimit reports a limit that is neither a number nor "All".
var ErrInvalidLimit = errors.New("limit must be a number or 'All'")

// FieldSelection is a collected field list. Nil Names is the
// "all-required" sentinel: the search then falls back to the default
// Id/Name fields (the describe-derived required list is deliberately not
// re-derived at search time — long-standing behavior that query text
// consumers rely on).
type FieldSelection struct {
	Names []string
}

// Limit is a collected record cap. Nil N means unbounded.
type Limit struct {
	N *int
}

// Session holds the values collected so far. A nil pointer means the
// step that produces it has not run yet. Sessions live for one process
// invocation; nothing is persisted.
type Session struct {
	OrgAlias      *string
	Authenticated bool
	ObjectName    *string
	Fields        *FieldSelection
	Keyword       *string
	Limit         *Limit
}

// NextStep returns the first step whose value is not yet populated.
func (s Session) NextStep() Step {
	switch {
	case s.OrgAlias == nil:
		return StepOrgAlias
	case !s.Authenticated:
		return StepAuthenticate
	case s.ObjectName == nil:
		return StepObjectName
	case s.Fields == nil:
		return StepFields
	case s.Keyword == nil:
		return StepKeyword
	case s.Limit == nil:
		return StepLimit
	default:
		return StepExecute
	}
}

// ClearOrgAlias drops the org alias after an authentication failure.
// Other collected values survive.
func (s Session) ClearOrgAlias() Session {
	s.OrgAlias = nil
	s.Authenticated = false
	return s
}

// IsStartOver reports whether input is the universal restart escape.
func IsStartOver(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), StartOverInput)
}

// Apply applies user input at a collection step and returns the new
// session. "start over" at any step returns an empty session. The only
// possible error is ErrInvalidLimit, which leaves the session unchanged
// so the step re-prompts.
func Apply(s Session, step Step, input string) (Session, error) {
	if IsStartOver(input) {
		return Session{}, nil
	}
	input = strings.TrimSpace(input)

	switch step {
	case StepOrgAlias:
		s.OrgAlias = &input
	case StepObjectName:
		s.ObjectName = &input
	case StepFields:
		s.Fields = ParseFields(input)
	case StepKeyword:
		s.Keyword = &input
	case StepLimit:
		limit, err := ParseLimit(input)
		if err != nil {
			return s, err
		}
		s.Limit = limit
	}
	return s, nil
}

// ParseFields maps "all-required" to the sentinel selection; anything
// else splits on commas. Only the input as a whole is trimmed — inner
// entries keep their surrounding whitespace, and an empty input yields a
// single empty field name. Both quirks are part of the observed query
// text.
func ParseFields(input string) *FieldSelection {
	if strings.EqualFold(input, "all-required") {
		return &FieldSelection{}
	}
	return &FieldSelection{Names: strings.Split(input, ",")}
}

// ParseLimit maps empty input and "all" (any case) to unbounded;
// anything else must be an integer.
func ParseLimit(input string) (*Limit, error) {
	if input == "" || strings.EqualFold(input, "all") {
		return &Limit{}, nil
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return nil, ErrInvalidLimit
	}
	return &Limit{N: &n}, nil
}
