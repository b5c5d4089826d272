// Package rating implements the two halves of the UPS Rating XML exchange:
// encoding a flat, mostly-optional Options set into the carrier's
// order-sensitive AccessRequest and RatingServiceSelectionRequest documents,
// and decoding the carrier's response into a Result.
//
// The carrier schema fixes the order of sibling elements, so documents are
// built on etree rather than struct marshalling. Per-field truncation
// limits, fixed-width numeric formats, and code-table lookups follow the
// Rating Package XML specification; lookups of unknown keys fail with an
// EncodingError instead of emitting an undefined code.
//
// Carrier-reported errors and communication failures are data on the
// Result, not returned errors: they are expected runtime outcomes the
// caller branches on. Only contract violations (missing required options,
// unknown code-table keys) are returned as errors, raised before any
// document leaves the process.
package rating
