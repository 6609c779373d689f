package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/strand-db/strand/internal/canonical"
)

// toCanonicalMap converts a Result to a map[string]any for canonical JSON
// serialization. Optional fields are omitted rather than emitted empty so
// golden files stay readable.
func (r *Result) toCanonicalMap() map[string]any {
	traceList := make([]any, len(r.Trace))
	for i, event := range r.Trace {
		eventMap := map[string]any{
			"seq":     event.Seq,
			"op":      event.Op,
			"outcome": event.Outcome,
		}
		if event.Value != "" {
			eventMap["value"] = event.Value
		}
		if event.Query != "" {
			eventMap["query"] = event.Query
		}
		if event.ID != "" {
			eventMap["id"] = event.ID
		}
		if event.Matches != nil {
			matches := make([]any, len(event.Matches))
			for j, m := range event.Matches {
				matches[j] = m
			}
			eventMap["matches"] = matches
		}
		traceList[i] = eventMap
	}

	return map[string]any{
		"scenario_name": r.ScenarioName,
		"trace":         traceList,
	}
}

// RunWithGolden executes a scenario and compares its trace against the
// golden file testdata/golden/{scenario.Name}.golden. Regenerate with:
//
//	go test ./internal/harness -update
//
// The trace serializes through the same canonical JSON used for stored
// character frequencies, so golden files are byte-stable across runs and
// platforms.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	return AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares an already-computed result against its golden
// file.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	traceJSON, err := canonical.Marshal(result.toCanonicalMap())
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, traceJSON)
	return nil
}
