package sf

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/open-cli-collective/prospector/log"
)

// fakeRunner returns scripted output per sfdx subcommand and records
// every invocation.
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   [][]string
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) (string, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	sub := args[0]
	if err, ok := r.errs[sub]; ok {
		return "", err
	}
	return r.outputs[sub], nil
}

func newTestClient(runner Runner) *Client {
	return NewClient("sfdx", runner, log.NewNop())
}

const authListOutput = `{"result": [
	{"alias": "MyOrg", "username": "dev@example.com", "instanceUrl": "https://example.my.salesforce.com", "isDefaultUsername": true},
	{"alias": "Staging", "username": "stage@example.com"}
]}`

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name   string
		alias  string
		output string
		err    error
		want   bool
	}{
		{"exact match", "MyOrg", authListOutput, nil, true},
		{"second entry", "Staging", authListOutput, nil, true},
		{"case sensitive", "myorg", authListOutput, nil, false},
		{"no match", "Prod", authListOutput, nil, false},
		{"empty result object", "MyOrg", `{}`, nil, false},
		{"malformed output", "MyOrg", `Error: something broke`, nil, false},
		{"command failure", "MyOrg", "", &CommandError{Kind: ErrNonZeroExit}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{
				outputs: map[string]string{"auth:list": tt.output},
			}
			if tt.err != nil {
				runner.errs = map[string]error{"auth:list": tt.err}
			}
			c := newTestClient(runner)

			if got := c.Authenticate(context.Background(), tt.alias); got != tt.want {
				t.Errorf("Authenticate(%q) = %v, want %v", tt.alias, got, tt.want)
			}
		})
	}
}

func TestAuthenticatedOrgs(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{"auth:list": authListOutput}}
	c := newTestClient(runner)

	orgs := c.AuthenticatedOrgs(context.Background())
	if len(orgs) != 2 {
		t.Fatalf("got %d orgs, want 2", len(orgs))
	}
	if orgs[0].Alias != "MyOrg" || !orgs[0].IsDefault {
		t.Errorf("first org = %+v", orgs[0])
	}
	if orgs[1].Alias != "Staging" || orgs[1].IsDefault {
		t.Errorf("second org = %+v", orgs[1])
	}
}

func TestListObjects(t *testing.T) {
	runner := &fakeRunner{
		outputs: map[string]string{
			"schema:sobject:list": `{"result": ["Account", "Contact", "Lead"]}`,
		},
	}
	c := newTestClient(runner)

	names := c.ListObjects(context.Background(), "MyOrg")
	if len(names) != 3 || names[0] != "Account" {
		t.Fatalf("ListObjects() = %v", names)
	}

	call := runner.calls[0]
	wantArgs := []string{"sfdx", "schema:sobject:list", "--target-org", "MyOrg", "--json"}
	if strings.Join(call, " ") != strings.Join(wantArgs, " ") {
		t.Errorf("command = %v, want %v", call, wantArgs)
	}
}

func TestDescribeObject(t *testing.T) {
	describeOutput := `{"result": {"fields": [
		{"name": "Id", "type": "id", "nillable": false, "createable": false},
		{"name": "Name", "type": "string", "nillable": false, "createable": true},
		{"name": "Phone", "type": "phone", "nillable": true, "createable": true}
	]}}`

	t.Run("field order and required classification", func(t *testing.T) {
		runner := &fakeRunner{outputs: map[string]string{"sobject:describe": describeOutput}}
		c := newTestClient(runner)

		fields, err := c.DescribeObject(context.Background(), "MyOrg", "Account")
		if err != nil {
			t.Fatalf("DescribeObject failed: %v", err)
		}
		if len(fields) != 3 {
			t.Fatalf("got %d fields, want 3", len(fields))
		}
		if fields[0].Name != "Id" || fields[1].Name != "Name" || fields[2].Name != "Phone" {
			t.Errorf("field order not preserved: %+v", fields)
		}
		if fields[0].Required() {
			t.Error("Id (not createable) classified required")
		}
		if !fields[1].Required() {
			t.Error("Name (not nillable, createable) not classified required")
		}
		if fields[2].Required() {
			t.Error("Phone (nillable) classified required")
		}

		call := runner.calls[0]
		wantArgs := []string{"sfdx", "sobject:describe", "-o", "MyOrg", "-s", "Account", "--json"}
		if strings.Join(call, " ") != strings.Join(wantArgs, " ") {
			t.Errorf("command = %v, want %v", call, wantArgs)
		}
	})

	t.Run("command failure propagates", func(t *testing.T) {
		runner := &fakeRunner{
			errs: map[string]error{"sobject:describe": &CommandError{Kind: ErrNonZeroExit, Stderr: "no access"}},
		}
		c := newTestClient(runner)

		if _, err := c.DescribeObject(context.Background(), "MyOrg", "Account"); !errors.Is(err, ErrNonZeroExit) {
			t.Errorf("error = %v, want ErrNonZeroExit", err)
		}
	})

	t.Run("parse failure yields empty fields, no error", func(t *testing.T) {
		runner := &fakeRunner{outputs: map[string]string{"sobject:describe": `garbage`}}
		c := newTestClient(runner)

		fields, err := c.DescribeObject(context.Background(), "MyOrg", "Account")
		if err != nil {
			t.Fatalf("DescribeObject failed: %v", err)
		}
		if len(fields) != 0 {
			t.Errorf("fields = %v, want empty", fields)
		}
	})
}

func TestSearch(t *testing.T) {
	t.Run("records extracted", func(t *testing.T) {
		runner := &fakeRunner{
			outputs: map[string]string{
				"data:soql:query": `{"result": {"records": [{"Id": "001", "Name": "Acme"}]}}`,
			},
		}
		c := newTestClient(runner)

		records, err := c.Search(context.Background(), "MyOrg", "FIND {Acme} RETURNING Account(Id, Name )")
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(records) != 1 || records[0]["Name"] != "Acme" {
			t.Errorf("records = %v", records)
		}

		call := runner.calls[0]
		if call[1] != "data:soql:query" || call[2] != "--query" {
			t.Errorf("command = %v", call)
		}
		if call[4] != "--target-org" || call[5] != "MyOrg" {
			t.Errorf("command = %v", call)
		}
	})

	t.Run("malformed response", func(t *testing.T) {
		runner := &fakeRunner{outputs: map[string]string{"data:soql:query": `not json`}}
		c := newTestClient(runner)

		if _, err := c.Search(context.Background(), "MyOrg", "q"); !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("error = %v, want ErrMalformedResponse", err)
		}
	})

	t.Run("missing result key is empty", func(t *testing.T) {
		runner := &fakeRunner{outputs: map[string]string{"data:soql:query": `{"status": 0}`}}
		c := newTestClient(runner)

		records, err := c.Search(context.Background(), "MyOrg", "q")
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("records = %v, want empty", records)
		}
	})
}
