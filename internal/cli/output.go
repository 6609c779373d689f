package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/strand-db/strand/internal/analysis"
	"github.com/strand-db/strand/internal/filter"
	"github.com/strand-db/strand/internal/nlq"
	"github.com/strand-db/strand/internal/store"
)

// Process exit codes.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Expected negative outcome (conflict, not found, rejected query)
	ExitCommandError = 2 // Command error (invalid paths, database not found, etc.)
)

// Error codes mapping the failure taxonomy onto CLI output. A transport
// adapter would translate these the same way (e.g. unprocessable vs. bad
// request for CONFLICTING_FILTER vs. UNPARSEABLE).
const (
	CodeTypeMismatch      = "TYPE_MISMATCH"
	CodeConflict          = "CONFLICT"
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidFilter     = "INVALID_FILTER"
	CodeConflictingFilter = "CONFLICTING_FILTER"
	CodeUnparseable       = "UNPARSEABLE"
	CodeInternal          = "INTERNAL"
)

// Classify maps an error onto its taxonomy code and exit code. Anything
// outside the taxonomy is a genuine infrastructure failure and reports as
// INTERNAL.
func Classify(err error) (code string, exit int) {
	switch {
	case analysis.IsTypeMismatch(err):
		return CodeTypeMismatch, ExitFailure
	case store.IsConflict(err):
		return CodeConflict, ExitFailure
	case store.IsNotFound(err):
		return CodeNotFound, ExitFailure
	case filter.IsInvalidFilter(err):
		return CodeInvalidFilter, ExitFailure
	case filter.IsConflictingFilter(err):
		return CodeConflictingFilter, ExitFailure
	case nlq.IsUnparseable(err):
		return CodeUnparseable, ExitFailure
	default:
		return CodeInternal, ExitCommandError
	}
}

// ExitError carries a process exit code alongside an error.
type ExitError struct {
	Code    int    // ExitFailure or ExitCommandError
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError attaches an exit code and message to an error.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode resolves the process exit code for an error.
// Taxonomy errors map through Classify; other errors default to
// ExitCommandError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	_, exit := Classify(err)
	return exit
}

// OutputFormatter renders command results as JSON or text.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the JSON envelope every command emits in json format.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError carries the taxonomy code and message of a failed command.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success emits a successful result. Text rendering is delegated to
// render when non-nil; otherwise the payload prints as-is.
func (f *OutputFormatter) Success(data any, render func(io.Writer)) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}
	if render != nil {
		render(f.Writer)
		return nil
	}
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Failure outputs a taxonomy error in the configured format and returns an
// ExitError carrying the matching exit code.
func (f *OutputFormatter) Failure(err error) error {
	code, exit := Classify(err)

	if f.Format == "json" {
		if encErr := json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: err.Error()},
		}); encErr != nil {
			return encErr
		}
	} else {
		fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, err.Error())
	}

	return &ExitError{Code: exit, Message: err.Error(), Err: err}
}

// PrintRecord renders a record in the human-readable text format.
func PrintRecord(w io.Writer, rec store.Record) {
	fmt.Fprintf(w, "id:                %s\n", rec.ID)
	fmt.Fprintf(w, "value:             %q\n", rec.Value)
	fmt.Fprintf(w, "length:            %d\n", rec.Properties.Length)
	fmt.Fprintf(w, "is_palindrome:     %t\n", rec.Properties.IsPalindrome)
	fmt.Fprintf(w, "unique_characters: %d\n", rec.Properties.UniqueCharacters)
	fmt.Fprintf(w, "word_count:        %d\n", rec.Properties.WordCount)
	fmt.Fprintf(w, "created_at:        %s\n", rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
}

// PrintRecords renders a query result list.
func PrintRecords(w io.Writer, records []store.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "no matching records")
		return
	}
	for i, rec := range records {
		if i > 0 {
			fmt.Fprintln(w)
		}
		PrintRecord(w, rec)
	}
}

// PrintFilters renders an applied/derived filter echo with stable key order.
func PrintFilters(w io.Writer, label string, filters map[string]any) {
	if len(filters) == 0 {
		fmt.Fprintf(w, "%s: (none)\n", label)
		return
	}
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(w, "%s:\n", label)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s = %v\n", k, filters[k])
	}
}
