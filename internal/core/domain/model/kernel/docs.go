// Package kernel provides core domain primitives for the recycling custody
// and transport workflow.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and
//     comparison capabilities
//   - Weight: a value object for material weights in kilograms, carrying the
//     comparison tolerance used by the weight-conservation invariants
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
