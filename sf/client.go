package sf

import (
	"context"

	"github.com/open-cli-collective/prospector/log"
	"github.com/open-cli-collective/prospector/types"
)

// DefaultBinary is the sfdx executable invoked when the config file and
// --sf-bin flag name none.
const DefaultBinary = "sfdx"

// Client wraps the sfdx CLI: authentication checks, schema introspection,
// and SOSL search execution. All substantive work happens in the child
// process; the client builds argument lists and interprets JSON output.
type Client struct {
	bin    string
	runner Runner
	parser *Parser
	logger *log.Logger
}

// NewClient creates a client invoking the given sfdx binary through runner.
// An empty bin falls back to DefaultBinary.
func NewClient(bin string, runner Runner, logger *log.Logger) *Client {
	if bin == "" {
		bin = DefaultBinary
	}
	return &Client{
		bin:    bin,
		runner: runner,
		parser: NewParser(logger),
		logger: logger,
	}
}

// Authenticate reports whether alias names a previously authenticated org.
// The match against the auth:list result is exact and case-sensitive.
// Any command or parse failure yields false.
func (c *Client) Authenticate(ctx context.Context, alias string) bool {
	out, err := c.runner.Run(ctx, c.bin, "auth:list", "--json")
	if err != nil {
		return false
	}
	for _, org := range c.parser.Maps(out, "result") {
		if name, ok := org["alias"].(string); ok && name == alias {
			return true
		}
	}
	return false
}

// AuthenticatedOrgs returns the orgs reported by auth:list.
// Empty on any command or parse failure.
func (c *Client) AuthenticatedOrgs(ctx context.Context) []types.OrgInfo {
	out, err := c.runner.Run(ctx, c.bin, "auth:list", "--json")
	if err != nil {
		return nil
	}
	records := c.parser.Maps(out, "result")
	orgs := make([]types.OrgInfo, 0, len(records))
	for _, record := range records {
		orgs = append(orgs, types.OrgFromRecord(record))
	}
	return orgs
}

// ListObjects returns the sobject names available in the org, in the
// order the platform reports them. Empty on any command or parse failure.
func (c *Client) ListObjects(ctx context.Context, alias string) []string {
	out, err := c.runner.Run(ctx, c.bin, "schema:sobject:list", "--target-org", alias, "--json")
	if err != nil {
		return []string{}
	}
	return c.parser.Strings(out, "result")
}

// DescribeObject returns the field descriptors of object, in the order the
// platform reports them. A command failure is returned to the caller for a
// user-facing message; a parse failure is logged and yields an empty list.
func (c *Client) DescribeObject(ctx context.Context, alias, object string) ([]types.FieldDescriptor, error) {
	out, err := c.runner.Run(ctx, c.bin, "sobject:describe", "-o", alias, "-s", object, "--json")
	if err != nil {
		return nil, err
	}

	records, ok := c.parser.Value(out, "result", "fields")
	if !ok {
		c.logger.Error("describe parse failed", map[string]any{
			"object": object,
		})
		return []types.FieldDescriptor{}, nil
	}
	items, ok := records.([]any)
	if !ok {
		return []types.FieldDescriptor{}, nil
	}

	fields := make([]types.FieldDescriptor, 0, len(items))
	for _, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			continue
		}
		fields = append(fields, fieldFromRecord(record))
	}
	return fields, nil
}

// Search runs a SOSL query and returns the matched records.
// The query is logged at info level before execution. Command failures
// propagate as *CommandError; an unparseable response yields
// ErrMalformedResponse.
func (c *Client) Search(ctx context.Context, alias, query string) ([]map[string]any, error) {
	c.logger.Info("executing query", map[string]any{
		"org":   alias,
		"query": query,
	})

	out, err := c.runner.Run(ctx, c.bin, "data:soql:query", "--query", query, "--target-org", alias, "--json")
	if err != nil {
		return nil, err
	}
	return c.parser.Records(out, "result", "records")
}

// fieldFromRecord builds a FieldDescriptor from a raw describe field map.
// Defaults mirror the platform semantics for absent flags: an unreported
// nillable counts as nillable, an unreported createable as not createable,
// so a malformed field record is never classified as required.
func fieldFromRecord(record map[string]any) types.FieldDescriptor {
	f := types.FieldDescriptor{Nillable: true}
	if name, ok := record["name"].(string); ok {
		f.Name = name
	}
	if typ, ok := record["type"].(string); ok {
		f.Type = typ
	}
	if nillable, ok := record["nillable"].(bool); ok {
		f.Nillable = nillable
	}
	if createable, ok := record["createable"].(bool); ok {
		f.Createable = createable
	}
	return f
}
