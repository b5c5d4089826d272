// Package ups provides the main client API for requesting shipping rates.
//
// A Client runs the full exchange for each call: encode the credentials and
// rating fragments, POST the combined document to the production or
// integration endpoint, and decode the response into a rating.Result. Calls
// share no mutable state and are safe to run concurrently.
package ups
