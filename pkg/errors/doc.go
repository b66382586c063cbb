// Package errors provides structured error types with classification codes
// for the devaci deployment pipeline. Codes cover controller authentication,
// configuration commits, template rendering, and transport failures so callers
// can branch on failure class without string matching.
package errors
