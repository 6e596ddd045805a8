package query

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/talentgraph/jobsbridge/internal/domain"
	"github.com/talentgraph/jobsbridge/internal/repository"
	"github.com/talentgraph/jobsbridge/pkg/graphql"
	"github.com/talentgraph/jobsbridge/pkg/logging"
)

// Executor runs a validated query against the upstream API.
// *graphql.Client satisfies this.
type Executor interface {
	Execute(ctx context.Context, query string) (graphql.Result, error)
}

// Service validates and executes GraphQL queries
type Service interface {
	// Execute runs the validation gate and, on acceptance, a single
	// request against the Jobs API. The query reaches the wire unmodified.
	Execute(ctx context.Context, query string) (graphql.Result, error)
}

// Option configures Service
type Option func(*config)

type config struct {
	executor Executor
	repo     repository.ExecutionRepository
	logger   *logging.Logger
	clock    func() time.Time
}

// WithExecutor sets the upstream executor
func WithExecutor(executor Executor) Option {
	return func(c *config) {
		c.executor = executor
	}
}

// WithRepository sets the execution history store
func WithRepository(repo repository.ExecutionRepository) Option {
	return func(c *config) {
		c.repo = repo
	}
}

// WithLogger sets the service logger
func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		clock:  time.Now,
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.executor == nil {
		return nil, fmt.Errorf("query.Service: executor is required")
	}

	return &service{
		executor: cfg.executor,
		repo:     cfg.repo,
		logger:   cfg.logger,
		clock:    cfg.clock,
	}, nil
}

type service struct {
	executor Executor
	repo     repository.ExecutionRepository
	logger   *logging.Logger
	clock    func() time.Time
}

func (s *service) Execute(ctx context.Context, query string) (graphql.Result, error) {
	start := s.clock()

	exec := domain.QueryExecution{
		ID:         uuid.New(),
		Query:      query,
		ExecutedAt: start.UTC(),
	}

	if err := graphql.Validate(query); err != nil {
		exec.Status = domain.ExecutionRejected
		exec.Detail = err.Error()
		s.logger.Warn("query rejected by validation", "id", exec.ID, "err", err)
		s.record(ctx, exec)
		return nil, err
	}

	result, err := s.executor.Execute(ctx, query)
	exec.DurationMS = s.clock().Sub(start).Milliseconds()

	if err != nil {
		exec.Status = domain.ExecutionFailed
		exec.Detail = err.Error()
		s.record(ctx, exec)
		return nil, err
	}

	exec.Status = domain.ExecutionSucceeded
	s.record(ctx, exec)

	return result, nil
}

// record stores the audit entry best-effort; history must never fail a call
func (s *service) record(ctx context.Context, exec domain.QueryExecution) {
	if s.repo == nil {
		return
	}
	if err := s.repo.RecordExecution(ctx, exec); err != nil {
		s.logger.Warn("failed to record query execution", "id", exec.ID, "err", err)
	}
}
