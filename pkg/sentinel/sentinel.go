package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: row does not exist in the store, or is gated from public reads
// - ErrConflict: uniqueness violation (duplicate slug during seeding)
//
// For validation errors (bad input, missing parameters), use pkg/domainerrors
// directly.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
