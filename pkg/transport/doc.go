// Package transport implements the HTTPS client used to submit rating
// requests, with TLS 1.2/1.3 and certificate verification on by default.
//
// The contract is a single blocking POST with a fixed timeout and no
// automatic retry; the caller decides how to treat a failed call.
// InsecureSkipVerify exists as an explicit opt-in for carrier sandbox
// environments only.
package transport
