package store

import (
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/strand-db/strand/internal/canonical"
)

// marshalFrequency serializes a character frequency map to canonical JSON
// TEXT for the character_frequency column. Canonical serialization keeps
// the column byte-reproducible from the value, so the round-trip invariant
// (analyze(record.value) == record.properties) holds at the byte level.
func marshalFrequency(freq map[string]int64) (string, error) {
	data, err := canonical.Marshal(freq)
	if err != nil {
		return "", errors.Wrap(err, "marshal frequency map")
	}
	return string(data), nil
}

// unmarshalFrequency parses the character_frequency column.
func unmarshalFrequency(data string) (map[string]int64, error) {
	freq := make(map[string]int64)
	if data == "" || data == "{}" {
		return freq, nil
	}
	if err := json.Unmarshal([]byte(data), &freq); err != nil {
		return nil, errors.Wrap(err, "unmarshal frequency map")
	}
	return freq, nil
}
