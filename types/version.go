package types

// Version is the canonical project version.
// The CLI and the history journal format share this version.
const Version = "0.3.0"
