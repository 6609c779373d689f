// Package service exposes the core operations independent of transport:
// create, retrieve by value, structured query, natural-language query, and
// delete by value. A thin adapter (the CLI, or any future transport) maps
// these onto its own wire format and translates the typed failure kinds
// into transport-appropriate signals.
//
// A Service is explicitly constructed with its Store and logger. No
// package-level singletons, no hidden initialization order.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/strand-db/strand/internal/analysis"
	"github.com/strand-db/strand/internal/filter"
	"github.com/strand-db/strand/internal/nlq"
	"github.com/strand-db/strand/internal/store"
)

// Service wires the analyzer, filter compiler, interpreter, and store into
// the five logical operations. Safe for concurrent use: the only shared
// mutable state is the store's backing database.
type Service struct {
	store *store.Store
	log   *zap.Logger
}

// New constructs a Service. The logger must not be nil; pass zap.NewNop()
// to silence it.
func New(st *store.Store, log *zap.Logger) *Service {
	return &Service{store: st, log: log}
}

// QueryResult is the response of a structured query: matching records plus
// an echo of the filters actually applied.
type QueryResult struct {
	Records []store.Record `json:"records"`
	Applied map[string]any `json:"filters_applied"`
}

// NLQueryResult is the response of a natural-language query: matching
// records plus the original text and the filters derived from it.
type NLQueryResult struct {
	Query   string         `json:"query"`
	Derived map[string]any `json:"filters_derived"`
	Records []store.Record `json:"records"`
}

// Create analyzes a value and inserts its record.
//
// Fails with analysis.TypeMismatchError when the input is not a string and
// with store.ConflictError when the value already exists. The conflict is
// surfaced, not retried: the caller decides whether to fetch instead.
func (s *Service) Create(ctx context.Context, value any) (store.Record, error) {
	reqID := uuid.NewString()
	started := time.Now()

	id, props, err := analysis.AnalyzeValue(value)
	if err != nil {
		s.log.Warn("create rejected",
			zap.String("request_id", reqID),
			zap.String("operation", "create"),
			zap.Error(err),
		)
		return store.Record{}, err
	}

	rec, err := s.store.Insert(ctx, id, value.(string), props)
	if err != nil {
		return store.Record{}, err
	}

	s.log.Info("record created",
		zap.String("request_id", reqID),
		zap.String("operation", "create"),
		zap.String("id", rec.ID),
		zap.Int("length", rec.Properties.Length),
		zap.Duration("duration", time.Since(started)),
	)
	return rec, nil
}

// GetByValue retrieves the record for a value, or store.NotFoundError.
func (s *Service) GetByValue(ctx context.Context, value string) (store.Record, error) {
	rec, err := s.store.GetByValue(ctx, value)
	if err != nil {
		return store.Record{}, err
	}
	return rec, nil
}

// Query compiles a structured filter request and runs it.
//
// Fails with filter.InvalidFilterError or filter.ConflictingFilterError
// before touching storage; a contradictory filter is never executed as an
// empty-result query.
func (s *Service) Query(ctx context.Context, f filter.Filter) (QueryResult, error) {
	reqID := uuid.NewString()

	c, err := filter.Compile(f)
	if err != nil {
		s.log.Warn("query rejected",
			zap.String("request_id", reqID),
			zap.String("operation", "query"),
			zap.Error(err),
		)
		return QueryResult{}, err
	}

	records, err := s.store.Query(ctx, c)
	if err != nil {
		return QueryResult{}, err
	}

	s.log.Info("query executed",
		zap.String("request_id", reqID),
		zap.String("operation", "query"),
		zap.Int("matches", len(records)),
	)
	return QueryResult{Records: records, Applied: c.Applied()}, nil
}

// NLQuery interprets free text into a structured filter and runs it.
//
// Fails with nlq.UnparseableError when no pattern matches and with
// filter.ConflictingFilterError when the derived bounds contradict,
// two distinct client outcomes. The interpreter never touches the store; its
// output converges on the same compiler as Query.
func (s *Service) NLQuery(ctx context.Context, query string) (NLQueryResult, error) {
	reqID := uuid.NewString()

	f, err := nlq.Interpret(query)
	if err != nil {
		s.log.Warn("natural-language query rejected",
			zap.String("request_id", reqID),
			zap.String("operation", "nlquery"),
			zap.String("query", query),
			zap.Error(err),
		)
		return NLQueryResult{}, err
	}

	c, err := filter.Compile(f)
	if err != nil {
		return NLQueryResult{}, err
	}

	records, err := s.store.Query(ctx, c)
	if err != nil {
		return NLQueryResult{}, err
	}

	s.log.Info("natural-language query executed",
		zap.String("request_id", reqID),
		zap.String("operation", "nlquery"),
		zap.String("query", query),
		zap.Int("matches", len(records)),
	)
	return NLQueryResult{Query: query, Derived: c.Applied(), Records: records}, nil
}

// Count reports how many distinct values are stored.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

// Delete removes the record for a value.
// Fails with store.NotFoundError when no record exists.
func (s *Service) Delete(ctx context.Context, value string) error {
	reqID := uuid.NewString()

	deleted, err := s.store.DeleteByValue(ctx, value)
	if err != nil {
		return err
	}
	if !deleted {
		return &store.NotFoundError{Value: value}
	}

	s.log.Info("record deleted",
		zap.String("request_id", reqID),
		zap.String("operation", "delete"),
	)
	return nil
}
