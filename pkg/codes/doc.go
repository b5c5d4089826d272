// Package codes defines the carrier's code tables: fixed mappings between
// the human-readable option keys accepted by this library and the wire-level
// codes the UPS Rating XML API expects.
//
// Tables are immutable after package initialization and safe for concurrent
// use. Encoding uses forward lookup (key to code); decoding uses reverse
// lookup (code to key), which resolves ties by table declaration order.
package codes
