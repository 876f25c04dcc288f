// Package store holds the record store port and its implementations. The
// store is a document store: each collection is one opaque serialized blob,
// read and replaced wholesale. Partial updates are not supported.
package store

import "context"

// Collection names used by the application.
const (
	JobCollection       = "job_interviews"
	CandidateCollection = "candidate_interviews"
)

// DocumentStore is the persistence port. Implementations must be safe for
// concurrent use.
type DocumentStore interface {
	// Read returns the entire serialized collection, or nil if the
	// collection has never been written.
	Read(ctx context.Context, name string) ([]byte, error)

	// Write replaces the entire serialized collection.
	Write(ctx context.Context, name string, doc []byte) error

	// Close releases any underlying resources.
	Close() error
}
