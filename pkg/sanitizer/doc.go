// Package sanitizer normalizes free-text fields before validation and storage.
//
// All functions are idempotent: applying them more than once gives the same
// result. They never fail; input that normalizes to nothing becomes "".
package sanitizer
