package query

import (
	"context"
	"errors"
	"testing"

	"github.com/talentgraph/jobsbridge/internal/domain"
	"github.com/talentgraph/jobsbridge/pkg/graphql"
)

const validQuery = `{ jobs(limit: 10) { title salary } }`

type fakeExecutor struct {
	result graphql.Result
	err    error
	calls  int
	last   string
}

func (f *fakeExecutor) Execute(_ context.Context, query string) (graphql.Result, error) {
	f.calls++
	f.last = query
	return f.result, f.err
}

type memoryRepo struct {
	records []domain.QueryExecution
	err     error
}

func (m *memoryRepo) RecordExecution(_ context.Context, exec domain.QueryExecution) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, exec)
	return nil
}

func (m *memoryRepo) RecentExecutions(_ context.Context, limit int) ([]domain.QueryExecution, error) {
	if limit > len(m.records) {
		limit = len(m.records)
	}
	return m.records[:limit], nil
}

func newTestService(t *testing.T, executor Executor, opts ...Option) Service {
	t.Helper()
	svc, err := NewService(append([]Option{WithExecutor(executor)}, opts...)...)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestExecutePassesQueryThroughUnmodified(t *testing.T) {
	executor := &fakeExecutor{result: graphql.Result{"data": map[string]any{"jobs": []any{}}}}
	repo := &memoryRepo{}
	svc := newTestService(t, executor, WithRepository(repo))

	result, err := svc.Execute(context.Background(), validQuery)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if executor.last != validQuery {
		t.Errorf("executor received %q, want the query unmodified", executor.last)
	}
	if result["data"] == nil {
		t.Error("expected data in result")
	}
	if len(repo.records) != 1 || repo.records[0].Status != domain.ExecutionSucceeded {
		t.Errorf("records = %+v, want one succeeded entry", repo.records)
	}
}

func TestExecuteRejectedQueriesNeverReachTheWire(t *testing.T) {
	executor := &fakeExecutor{}
	repo := &memoryRepo{}
	svc := newTestService(t, executor, WithRepository(repo))

	_, err := svc.Execute(context.Background(), "{ jobs { title }")

	var verr *graphql.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Reason != graphql.ReasonUnbalancedBraces {
		t.Errorf("Reason = %s", verr.Reason)
	}
	if executor.calls != 0 {
		t.Errorf("executor called %d times, want 0", executor.calls)
	}
	if len(repo.records) != 1 || repo.records[0].Status != domain.ExecutionRejected {
		t.Errorf("records = %+v, want one rejected entry", repo.records)
	}
}

func TestExecutePropagatesExecutorErrors(t *testing.T) {
	wantErr := &graphql.TransportError{Status: 500}
	executor := &fakeExecutor{err: wantErr}
	repo := &memoryRepo{}
	svc := newTestService(t, executor, WithRepository(repo))

	_, err := svc.Execute(context.Background(), validQuery)

	var terr *graphql.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected *TransportError, got %v", err)
	}
	if len(repo.records) != 1 || repo.records[0].Status != domain.ExecutionFailed {
		t.Errorf("records = %+v, want one failed entry", repo.records)
	}
}

func TestExecuteRepositoryFailureDoesNotFailTheCall(t *testing.T) {
	executor := &fakeExecutor{result: graphql.Result{"data": nil}}
	repo := &memoryRepo{err: errors.New("store down")}
	svc := newTestService(t, executor, WithRepository(repo))

	if _, err := svc.Execute(context.Background(), validQuery); err != nil {
		t.Fatalf("Execute: %v, want history failures to be swallowed", err)
	}
}

func TestExecuteWorksWithoutRepository(t *testing.T) {
	executor := &fakeExecutor{result: graphql.Result{}}
	svc := newTestService(t, executor)

	if _, err := svc.Execute(context.Background(), validQuery); err != nil {
		t.Fatalf("Execute: %v", err)
	}
}

func TestNewServiceRequiresExecutor(t *testing.T) {
	if _, err := NewService(); err == nil {
		t.Fatal("expected error without executor")
	}
}
