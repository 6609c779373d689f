package harness

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/strand-db/strand/internal/analysis"
	"github.com/strand-db/strand/internal/filter"
	"github.com/strand-db/strand/internal/nlq"
	"github.com/strand-db/strand/internal/service"
	"github.com/strand-db/strand/internal/store"
	"github.com/strand-db/strand/internal/testutil"
)

// Run executes a scenario against a fresh temporary store and returns the
// resulting trace. A stepping clock makes reference order reproducible, so
// two runs of the same scenario produce identical traces.
//
// Expectation failures are returned as errors naming the step, not
// panics, so callers can aggregate them per scenario.
func Run(scenario *Scenario) (*Result, error) {
	dir, err := os.MkdirTemp("", "harness-*")
	if err != nil {
		return nil, fmt.Errorf("creating scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	st, err := store.Open(filepath.Join(dir, "scenario.db"),
		store.WithClock(testutil.NewSteppingClock()))
	if err != nil {
		return nil, fmt.Errorf("opening scenario store: %w", err)
	}
	defer st.Close()

	svc := service.New(st, zap.NewNop())
	ctx := context.Background()

	result := &Result{ScenarioName: scenario.Name}
	for i, step := range scenario.Steps {
		event, err := runStep(ctx, svc, i, step)
		if err != nil {
			return nil, err
		}
		result.Trace = append(result.Trace, event)
	}
	return result, nil
}

// runStep executes one step, checks its expectation, and returns the
// trace event.
func runStep(ctx context.Context, svc *service.Service, index int, step Step) (TraceEvent, error) {
	event := TraceEvent{Seq: index, Op: step.Op}

	switch step.Op {
	case OpAdd:
		event.Value = step.Value
		rec, err := svc.Create(ctx, step.Value)
		event.Outcome = outcome(err)
		if err == nil {
			event.ID = rec.ID
		}

	case OpGet:
		event.Value = step.Value
		rec, err := svc.GetByValue(ctx, step.Value)
		event.Outcome = outcome(err)
		if err == nil {
			event.ID = rec.ID
		}

	case OpDelete:
		event.Value = step.Value
		err := svc.Delete(ctx, step.Value)
		event.Outcome = outcome(err)

	case OpQuery:
		f, err := filterFromMap(index, step.Filter)
		if err != nil {
			return TraceEvent{}, err
		}
		res, err := svc.Query(ctx, f)
		event.Outcome = outcome(err)
		if err == nil {
			event.Matches = recordValues(res.Records)
		}

	case OpAsk:
		event.Query = step.Query
		res, err := svc.NLQuery(ctx, step.Query)
		event.Outcome = outcome(err)
		if err == nil {
			event.Matches = recordValues(res.Records)
		}
	}

	if err := checkExpect(index, step.Expect, event); err != nil {
		return TraceEvent{}, err
	}
	return event, nil
}

// outcome maps an operation error onto its trace outcome name.
func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case analysis.IsTypeMismatch(err):
		return OutcomeTypeMismatch
	case store.IsConflict(err):
		return OutcomeConflict
	case store.IsNotFound(err):
		return OutcomeNotFound
	case filter.IsInvalidFilter(err):
		return OutcomeInvalidFilter
	case filter.IsConflictingFilter(err):
		return OutcomeConflictingFilter
	case nlq.IsUnparseable(err):
		return OutcomeUnparseable
	default:
		return "error"
	}
}

// filterFromMap converts the YAML filter fields of a query step into a
// Filter. Unknown fields are rejected: a scenario misspelling a filter
// field should fail the scenario, not widen the query.
func filterFromMap(index int, fields map[string]any) (filter.Filter, error) {
	var f filter.Filter
	for key, raw := range fields {
		switch key {
		case "is_palindrome":
			b, ok := raw.(bool)
			if !ok {
				return filter.Filter{}, fmt.Errorf("steps[%d].filter.%s: expected bool, got %T", index, key, raw)
			}
			f.IsPalindrome = filter.Bool(b)
		case "min_length", "max_length", "word_count":
			n, ok := raw.(int)
			if !ok {
				return filter.Filter{}, fmt.Errorf("steps[%d].filter.%s: expected int, got %T", index, key, raw)
			}
			switch key {
			case "min_length":
				f.MinLength = filter.Int(n)
			case "max_length":
				f.MaxLength = filter.Int(n)
			case "word_count":
				f.WordCount = filter.Int(n)
			}
		case "contains_character":
			s, ok := raw.(string)
			if !ok {
				return filter.Filter{}, fmt.Errorf("steps[%d].filter.%s: expected string, got %T", index, key, raw)
			}
			f.ContainsCharacter = filter.String(s)
		default:
			return filter.Filter{}, fmt.Errorf("steps[%d].filter: unknown field %q", index, key)
		}
	}
	return f, nil
}

func recordValues(records []store.Record) []string {
	values := make([]string, len(records))
	for i, rec := range records {
		values[i] = rec.Value
	}
	return values
}
