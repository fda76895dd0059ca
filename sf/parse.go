package sf

import (
	"encoding/json"

	"github.com/open-cli-collective/prospector/log"
)

// Parser extracts values from sfdx JSON responses, tolerating malformed
// input and missing keys.
//
// The sfdx response shape is not contractually stable across versions, so
// every accessor degrades to an empty default rather than surfacing an
// error to the session. Parse failures are logged and otherwise silent;
// callers that must distinguish "malformed" from "empty" use Value's ok
// result.
type Parser struct {
	logger *log.Logger
}

// NewParser creates a parser logging parse failures to logger.
func NewParser(logger *log.Logger) *Parser {
	return &Parser{logger: logger}
}

// Value parses text as JSON and walks the given key path. It returns
// (nil, false) when the text is not JSON, an intermediate key is missing,
// or an intermediate value is not an object.
func (p *Parser) Value(text string, path ...string) (any, bool) {
	var root any
	if err := json.Unmarshal([]byte(text), &root); err != nil {
		p.logger.Error("response parse failed", map[string]any{
			"error": err.Error(),
		})
		return nil, false
	}

	current := root
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Maps returns the value at path as a list of objects, or an empty list.
// Non-object elements are skipped.
func (p *Parser) Maps(text string, path ...string) []map[string]any {
	v, ok := p.Value(text, path...)
	if !ok {
		return []map[string]any{}
	}
	items, ok := v.([]any)
	if !ok {
		return []map[string]any{}
	}
	maps := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			maps = append(maps, m)
		}
	}
	return maps
}

// Records returns the object list at path, distinguishing malformed JSON
// from an absent or empty list: undecodable text yields
// ErrMalformedResponse, while a missing intermediate key degrades to an
// empty list. Search rendering needs the distinction ("Error: Unable to
// parse search results." vs "No records found.").
func (p *Parser) Records(text string, path ...string) ([]map[string]any, error) {
	var root any
	if err := json.Unmarshal([]byte(text), &root); err != nil {
		p.logger.Error("response parse failed", map[string]any{
			"error": err.Error(),
		})
		return nil, ErrMalformedResponse
	}

	current := root
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return []map[string]any{}, nil
		}
		current, ok = obj[key]
		if !ok {
			return []map[string]any{}, nil
		}
	}

	items, ok := current.([]any)
	if !ok {
		return []map[string]any{}, nil
	}
	records := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			records = append(records, m)
		}
	}
	return records, nil
}

// Strings returns the value at path as a list of strings, or an empty
// list. Non-string elements are skipped.
func (p *Parser) Strings(text string, path ...string) []string {
	v, ok := p.Value(text, path...)
	if !ok {
		return []string{}
	}
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	strs := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			strs = append(strs, s)
		}
	}
	return strs
}
