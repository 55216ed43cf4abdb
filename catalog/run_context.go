package catalog

import "net/http"

// RunContext holds the configuration for a single export run.
// It is immutable after construction.
type RunContext struct {
	Config Config
	// RecordRequests dumps the request and response under
	// testdata/.requests/<term> for debugging.
	RecordRequests bool
	// Transport replaces http.DefaultTransport when set.
	Transport http.RoundTripper
}
