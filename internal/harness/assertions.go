package harness

import (
	"fmt"
)

// checkExpect validates a step's trace event against its expectation.
// A nil expectation only requires the step not to hit an infrastructure
// error, which runStep already surfaced.
func checkExpect(index int, expect *Expect, event TraceEvent) error {
	if expect == nil {
		if event.Outcome == "error" {
			return fmt.Errorf("steps[%d]: unexpected infrastructure error", index)
		}
		return nil
	}

	if event.Outcome != expect.Outcome {
		return fmt.Errorf("steps[%d] (%s): expected outcome %q, got %q",
			index, event.Op, expect.Outcome, event.Outcome)
	}

	if expect.Count != nil && len(event.Matches) != *expect.Count {
		return fmt.Errorf("steps[%d] (%s): expected %d matches, got %d (%v)",
			index, event.Op, *expect.Count, len(event.Matches), event.Matches)
	}

	if expect.Values != nil {
		if err := matchValues(expect.Values, event.Matches); err != nil {
			return fmt.Errorf("steps[%d] (%s): %w", index, event.Op, err)
		}
	}
	return nil
}

// matchValues compares the expected match list against the actual one,
// order included. Reference order is part of the contract: the same query
// against the same store must list values newest first, ties broken by id.
func matchValues(expected, actual []string) error {
	if len(expected) != len(actual) {
		return fmt.Errorf("expected values %v, got %v", expected, actual)
	}
	for i := range expected {
		if expected[i] != actual[i] {
			return fmt.Errorf("match %d: expected %q, got %q (full: %v)", i, expected[i], actual[i], actual)
		}
	}
	return nil
}
