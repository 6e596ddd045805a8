package neo4j

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/talentgraph/jobsbridge/internal/domain"
	"github.com/talentgraph/jobsbridge/internal/repository"
	pkgneo4j "github.com/talentgraph/jobsbridge/pkg/neo4j"
)

// Ensure ExecutionRepository implements repository.ExecutionRepository
var _ repository.ExecutionRepository = (*ExecutionRepository)(nil)

// ExecutionRepository implements repository.ExecutionRepository with Neo4j
type ExecutionRepository struct {
	client *pkgneo4j.Client
}

// NewExecutionRepository creates an ExecutionRepository with a Neo4j client
func NewExecutionRepository(client *pkgneo4j.Client) *ExecutionRepository {
	return &ExecutionRepository{
		client: client,
	}
}

// RecordExecution merges one Execution node keyed by execution ID
func (r *ExecutionRepository) RecordExecution(ctx context.Context, exec domain.QueryExecution) error {
	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		MERGE (e:Execution {id: $id})
		SET e.query = $query,
		    e.status = $status,
		    e.detail = $detail,
		    e.durationMs = $durationMs,
		    e.executedAt = datetime({epochMillis: $executedAt})
	`

	params := map[string]interface{}{
		"id":         exec.ID.String(),
		"query":      exec.Query,
		"status":     string(exec.Status),
		"detail":     exec.Detail,
		"durationMs": exec.DurationMS,
		"executedAt": exec.ExecutedAt.UnixMilli(),
	}

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, fmt.Errorf("failed to record execution: %w", err)
		}
		return result.Consume(ctx)
	})

	return err
}

// RecentExecutions loads up to limit records ordered newest first
func (r *ExecutionRepository) RecentExecutions(ctx context.Context, limit int) ([]domain.QueryExecution, error) {
	if limit <= 0 {
		limit = 10
	}

	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (e:Execution)
		RETURN e
		ORDER BY e.executedAt DESC
		LIMIT $limit
	`

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		records, err := tx.Run(ctx, query, map[string]interface{}{"limit": limit})
		if err != nil {
			return nil, err
		}

		executions := make([]domain.QueryExecution, 0, limit)
		for records.Next(ctx) {
			record := records.Record()

			nodeVal, ok := record.Get("e")
			if !ok {
				continue
			}
			node, ok := nodeVal.(neo4j.Node)
			if !ok {
				continue
			}

			exec, err := executionFromProps(node.Props)
			if err != nil {
				continue
			}
			executions = append(executions, exec)
		}
		return executions, records.Err()
	})
	if err != nil {
		return nil, err
	}

	return result.([]domain.QueryExecution), nil
}

func executionFromProps(props map[string]any) (domain.QueryExecution, error) {
	idStr, _ := props["id"].(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return domain.QueryExecution{}, fmt.Errorf("invalid execution id %q: %w", idStr, err)
	}

	exec := domain.QueryExecution{ID: id}

	if v, ok := props["query"].(string); ok {
		exec.Query = v
	}
	if v, ok := props["status"].(string); ok {
		exec.Status = domain.ExecutionStatus(v)
	}
	if v, ok := props["detail"].(string); ok {
		exec.Detail = v
	}
	if v, ok := props["durationMs"].(int64); ok {
		exec.DurationMS = v
	}
	if v, ok := props["executedAt"].(time.Time); ok {
		exec.ExecutedAt = v
	}

	return exec, nil
}
