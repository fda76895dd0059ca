// Package types defines the shared domain types for prospector.
package types

// FieldDescriptor describes one field of a Salesforce sobject as reported
// by `sobject:describe`.
type FieldDescriptor struct {
	// Name is the API name of the field.
	Name string `json:"name"`
	// Type is the platform field type (e.g. "string", "reference").
	Type string `json:"type"`
	// Nillable reports whether the field may hold null.
	Nillable bool `json:"nillable"`
	// Createable reports whether the field may be set on record creation.
	Createable bool `json:"createable"`
}

// Required reports whether the field must be populated when creating a
// record: not nillable AND createable. A non-createable field is never
// required regardless of nillability (the platform fills it in).
func (f FieldDescriptor) Required() bool {
	return !f.Nillable && f.Createable
}

// FieldNames returns the names of all fields, in input order.
func FieldNames(fields []FieldDescriptor) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// RequiredFieldNames returns the names of the required fields, in input order.
func RequiredFieldNames(fields []FieldDescriptor) []string {
	var names []string
	for _, f := range fields {
		if f.Required() {
			names = append(names, f.Name)
		}
	}
	return names
}
