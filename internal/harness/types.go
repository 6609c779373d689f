package harness

// Outcome names for trace events and expectations. These mirror the
// failure taxonomy one-to-one, lowercased for YAML ergonomics.
const (
	OutcomeOK                = "ok"
	OutcomeConflict          = "conflict"
	OutcomeNotFound          = "not_found"
	OutcomeInvalidFilter     = "invalid_filter"
	OutcomeConflictingFilter = "conflicting_filter"
	OutcomeUnparseable       = "unparseable"
	OutcomeTypeMismatch      = "type_mismatch"
)

// TraceEvent records the observable result of one scenario step.
// Timestamps are deliberately absent: with content-addressed ids and a
// stepping clock the trace is fully determined by the step sequence.
type TraceEvent struct {
	Seq     int      `json:"seq"`
	Op      string   `json:"op"`
	Value   string   `json:"value,omitempty"`
	Query   string   `json:"query,omitempty"`
	Outcome string   `json:"outcome"`
	ID      string   `json:"id,omitempty"`
	Matches []string `json:"matches,omitempty"`
}

// Result is the outcome of running a scenario.
type Result struct {
	ScenarioName string
	Trace        []TraceEvent
}
