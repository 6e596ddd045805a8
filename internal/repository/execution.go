package repository

import (
	"context"

	"github.com/talentgraph/jobsbridge/internal/domain"
)

// ExecutionRepository persists the query execution audit trail
type ExecutionRepository interface {
	// RecordExecution stores one execution record
	RecordExecution(ctx context.Context, exec domain.QueryExecution) error

	// RecentExecutions returns up to limit records, newest first
	RecentExecutions(ctx context.Context, limit int) ([]domain.QueryExecution, error)
}
