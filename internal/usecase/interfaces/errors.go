package interfaces

import "errors"

// Repository-level failure signals. Repositories translate provider errors
// (conditional check failures, transaction cancellations) into these so the
// usecases can map them onto the domain taxonomy.
var (
	// ErrConditionFailed means an optimistic condition lost the race: the
	// record changed between the read and the conditional write.
	ErrConditionFailed = errors.New("conditional write failed")

	// ErrRecordMissing means a record referenced by a conditional write does
	// not exist.
	ErrRecordMissing = errors.New("record missing")
)
