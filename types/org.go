package types

// OrgInfo describes one authenticated org as reported by `auth:list`.
// Only the fields prospector consumes are modeled; the raw auth:list
// entries carry many more.
type OrgInfo struct {
	Alias       string `json:"alias"`
	Username    string `json:"username"`
	InstanceURL string `json:"instanceUrl"`
	IsDefault   bool   `json:"isDefaultUsername"`
}

// OrgFromRecord builds an OrgInfo from a raw auth:list result map.
// Missing or mistyped keys degrade to zero values; the auth:list shape is
// not contractually stable across sfdx versions.
func OrgFromRecord(record map[string]any) OrgInfo {
	return OrgInfo{
		Alias:       asString(record["alias"]),
		Username:    asString(record["username"]),
		InstanceURL: asString(record["instanceUrl"]),
		IsDefault:   asBool(record["isDefaultUsername"]),
	}
}

// asString converts a value to string, returning "" for nil/non-string.
func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// asBool converts a value to bool, returning false for nil/non-bool.
func asBool(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return false
}
