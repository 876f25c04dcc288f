package domain

import "errors"

var (
	// ErrRecordNotFound is returned when a record cannot be found by ID.
	ErrRecordNotFound = errors.New("record not found")

	// ErrRoundNotFound is returned when a candidate has no round with the given number.
	ErrRoundNotFound = errors.New("interview round not found")

	// ErrEmptyJobID is returned when a job record is created without a job ID.
	ErrEmptyJobID = errors.New("job id cannot be empty")

	// ErrEmptyName is returned when a candidate record is created without a name.
	ErrEmptyName = errors.New("candidate name cannot be empty")

	// ErrNoRounds is returned when a job would be left without any interview round.
	ErrNoRounds = errors.New("a job must have at least one interview round")

	// ErrEmptyRoundName is returned when a planned round has no name.
	ErrEmptyRoundName = errors.New("round name cannot be empty")

	// ErrInvalidStatus is returned in strict mode when an unknown status value is submitted.
	ErrInvalidStatus = errors.New("invalid status value")

	// ErrIllegalTransition is returned when a status change violates the round lifecycle.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrStoreUnavailable is returned when the record store cannot be written.
	ErrStoreUnavailable = errors.New("record store is currently unavailable")
)
