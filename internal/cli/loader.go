package cli

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/strand-db/strand/internal/filter"
)

// LoadCorpus reads a seed corpus file and returns the raw values in
// document order. The file is CUE (JSON is valid CUE, so plain JSON files
// work too) with a top-level "values" list:
//
//	values: ["racecar", "hello world", "taco cat"]
//
// Entries are decoded as-is, not coerced: a non-string entry survives
// loading and is rejected downstream by the analyzer, so a bad corpus
// reports per-entry failures instead of dying on the first one.
func LoadCorpus(path string) ([]any, error) {
	value, err := compileFile(path)
	if err != nil {
		return nil, err
	}

	listVal := value.LookupPath(cue.ParsePath("values"))
	if !listVal.Exists() {
		return nil, fmt.Errorf("%s: no top-level \"values\" list", path)
	}

	iter, err := listVal.List()
	if err != nil {
		return nil, fmt.Errorf("%s: \"values\" is not a list: %w", path, err)
	}

	var values []any
	for iter.Next() {
		var v any
		if err := iter.Value().Decode(&v); err != nil {
			return nil, fmt.Errorf("%s: decoding corpus entry: %w", path, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// LoadFilterFile reads a filter document (CUE or JSON) into a Filter.
// Unknown fields are dropped by the decoder, matching the query surface's
// forward-compatibility rule.
func LoadFilterFile(path string) (filter.Filter, error) {
	value, err := compileFile(path)
	if err != nil {
		return filter.Filter{}, err
	}

	var f filter.Filter
	if err := value.Decode(&f); err != nil {
		return filter.Filter{}, fmt.Errorf("%s: decoding filter: %w", path, err)
	}
	return f, nil
}

// compileFile reads and compiles a single CUE file.
func compileFile(path string) (cue.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("reading %s: %w", path, err)
	}

	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("compiling %s: %w", path, err)
	}
	return value, nil
}
