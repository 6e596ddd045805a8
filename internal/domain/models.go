package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExecutionID uniquely identifies one query execution
type ExecutionID = uuid.UUID

// ExecutionStatus captures the outcome of a query execution
type ExecutionStatus string

const (
	// ExecutionRejected means validation refused the query locally;
	// nothing was sent over the network.
	ExecutionRejected ExecutionStatus = "rejected"

	// ExecutionSucceeded means the endpoint returned a decodable JSON body.
	ExecutionSucceeded ExecutionStatus = "succeeded"

	// ExecutionFailed means transport failed or the body was not JSON.
	ExecutionFailed ExecutionStatus = "failed"
)

// QueryExecution is the audit record of a single GraphQL call attempt.
// Records are write-once; nothing outlives the call except this trail.
type QueryExecution struct {
	ID         ExecutionID
	Query      string
	Status     ExecutionStatus
	Detail     string // rejection reason or error text; empty on success
	DurationMS int64
	ExecutedAt time.Time
}
