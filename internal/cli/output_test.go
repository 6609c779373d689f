package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strand-db/strand/internal/analysis"
	"github.com/strand-db/strand/internal/filter"
	"github.com/strand-db/strand/internal/nlq"
	"github.com/strand-db/strand/internal/store"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		exit int
	}{
		{"type mismatch", &analysis.TypeMismatchError{Got: "int"}, CodeTypeMismatch, ExitFailure},
		{"conflict", &store.ConflictError{ID: "abc"}, CodeConflict, ExitFailure},
		{"not found", &store.NotFoundError{Value: "x"}, CodeNotFound, ExitFailure},
		{"invalid filter", &filter.InvalidFilterError{Field: "min_length", Reason: "negative"}, CodeInvalidFilter, ExitFailure},
		{"conflicting filter", &filter.ConflictingFilterError{MinLength: 5, MaxLength: 2}, CodeConflictingFilter, ExitFailure},
		{"unparseable", &nlq.UnparseableError{Query: "tell me a joke"}, CodeUnparseable, ExitFailure},
		{"unknown", errors.New("disk on fire"), CodeInternal, ExitCommandError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, exit := Classify(tt.err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.exit, exit)
		})
	}
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(errors.New("boom")))
	assert.Equal(t, ExitFailure, GetExitCode(&store.ConflictError{ID: "abc"}))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "bad path", errors.New("no such file"))))

	wrapped := WrapExitError(ExitFailure, "rejected", &store.NotFoundError{Value: "x"})
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))
}

func TestExitErrorMessage(t *testing.T) {
	e := WrapExitError(ExitCommandError, "failed to open database", errors.New("locked"))
	assert.Equal(t, "failed to open database: locked", e.Error())
	assert.Equal(t, "locked", e.Unwrap().Error())

	bare := &ExitError{Code: ExitFailure, Message: "nope"}
	assert.Equal(t, "nope", bare.Error())
	assert.Nil(t, bare.Unwrap())
}

func TestFormatterSuccessJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, f.Success(map[string]any{"id": "abc"}, nil))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Nil(t, resp.Error)
	assert.Equal(t, "abc", resp.Data.(map[string]any)["id"])
}

func TestFormatterFailureJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}

	err := f.Failure(&store.ConflictError{ID: "abc"})
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeConflict, resp.Error.Code)
}

func TestFormatterFailureText(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: buf}

	err := f.Failure(&nlq.UnparseableError{Query: "tell me a joke"})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "Error [UNPARSEABLE]")
}

func TestPrintFiltersStableOrder(t *testing.T) {
	buf := &bytes.Buffer{}
	PrintFilters(buf, "filters applied", map[string]any{
		"word_count":    int64(1),
		"is_palindrome": true,
		"min_length":    int64(6),
	})

	out := buf.String()
	assert.Less(t, bytes.Index([]byte(out), []byte("is_palindrome")), bytes.Index([]byte(out), []byte("min_length")))
	assert.Less(t, bytes.Index([]byte(out), []byte("min_length")), bytes.Index([]byte(out), []byte("word_count")))
}
