package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Operation names for scenario steps.
const (
	OpAdd    = "add"
	OpGet    = "get"
	OpQuery  = "query"
	OpAsk    = "ask"
	OpDelete = "delete"
)

// Scenario defines a conformance scenario: a named sequence of operations
// with expected outcomes, run against a fresh store.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Steps is the operation sequence, executed in order.
	Steps []Step `yaml:"steps"`
}

// Step is one operation in a scenario.
type Step struct {
	// Op is the operation name: add, get, query, ask, or delete.
	Op string `yaml:"op"`

	// Value is the subject string for add, get, and delete.
	Value string `yaml:"value,omitempty"`

	// Query is the natural-language text for ask.
	Query string `yaml:"query,omitempty"`

	// Filter holds structured filter fields for query, using the wire
	// field names (is_palindrome, min_length, max_length, word_count,
	// contains_character).
	Filter map[string]any `yaml:"filter,omitempty"`

	// Expect specifies the expected result. If nil, the step is assumed
	// to succeed and nothing beyond that is checked.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect specifies the expected result of a step.
type Expect struct {
	// Outcome is the expected outcome name (see the Outcome constants).
	Outcome string `yaml:"outcome"`

	// Count, when set, is the expected number of matches for query/ask.
	Count *int `yaml:"count,omitempty"`

	// Values, when set, is the exact expected match list in order,
	// newest first.
	Values []string `yaml:"values,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected so a typo fails loudly instead of silently skipping a check.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}
	return nil
}

// validateStep validates a single step based on its operation.
func validateStep(index int, step *Step) error {
	switch step.Op {
	case OpAdd, OpGet, OpDelete:
		if step.Value == "" && !stepAllowsEmptyValue(step) {
			return fmt.Errorf("steps[%d]: value is required for %s", index, step.Op)
		}
		if step.Query != "" || step.Filter != nil {
			return fmt.Errorf("steps[%d]: %s takes only a value", index, step.Op)
		}
	case OpQuery:
		if step.Value != "" || step.Query != "" {
			return fmt.Errorf("steps[%d]: query takes only a filter", index)
		}
	case OpAsk:
		if step.Query == "" {
			return fmt.Errorf("steps[%d]: query text is required for ask", index)
		}
		if step.Value != "" || step.Filter != nil {
			return fmt.Errorf("steps[%d]: ask takes only query text", index)
		}
	case "":
		return fmt.Errorf("steps[%d]: op is required", index)
	default:
		return fmt.Errorf("steps[%d]: unknown op %q", index, step.Op)
	}

	if step.Expect != nil {
		if err := validateExpect(index, step.Expect); err != nil {
			return err
		}
	}
	return nil
}

// stepAllowsEmptyValue reports whether a step explicitly targets the empty
// string. The empty string is a legitimate value with a well-defined
// content address, so a step that declares an expectation may use it.
func stepAllowsEmptyValue(step *Step) bool {
	return step.Expect != nil
}

func validateExpect(index int, e *Expect) error {
	switch e.Outcome {
	case OutcomeOK, OutcomeConflict, OutcomeNotFound, OutcomeInvalidFilter,
		OutcomeConflictingFilter, OutcomeUnparseable, OutcomeTypeMismatch:
	case "":
		return fmt.Errorf("steps[%d].expect: outcome is required", index)
	default:
		return fmt.Errorf("steps[%d].expect: unknown outcome %q", index, e.Outcome)
	}

	if e.Count != nil && *e.Count < 0 {
		return fmt.Errorf("steps[%d].expect: count must be non-negative", index)
	}
	if e.Count != nil && e.Values != nil && *e.Count != len(e.Values) {
		return fmt.Errorf("steps[%d].expect: count %d disagrees with %d values", index, *e.Count, len(e.Values))
	}
	return nil
}
