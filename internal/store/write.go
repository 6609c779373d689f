package store

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/strand-db/strand/internal/analysis"
)

// Insert persists a new string record and returns it.
//
// The duplicate check and the write are a single atomic statement:
// INSERT ... ON CONFLICT(id) DO NOTHING. When the content address is
// already present, zero rows are affected and Insert fails with
// ConflictError; at most one record for a value can ever exist, even when
// concurrent callers race on the same value and both observed "absent".
//
// created_at is stamped from the store's clock at this point and never
// mutated afterwards.
func (s *Store) Insert(ctx context.Context, id, value string, props analysis.Properties) (Record, error) {
	freqJSON, err := marshalFrequency(props.CharacterFrequency)
	if err != nil {
		return Record{}, errors.Wrap(err, "insert record")
	}

	createdAt := s.clock.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO strings
		(id, value, length, is_palindrome, unique_characters, word_count, character_frequency, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		id,
		value,
		props.Length,
		boolColumn(props.IsPalindrome),
		props.UniqueCharacters,
		props.WordCount,
		freqJSON,
		formatCreatedAt(createdAt),
	)
	if err != nil {
		return Record{}, errors.Wrap(err, "insert record")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return Record{}, errors.Wrap(err, "insert record: rows affected")
	}
	if affected == 0 {
		return Record{}, &ConflictError{ID: id}
	}

	return Record{
		ID:         id,
		Value:      value,
		Properties: props,
		CreatedAt:  createdAt,
	}, nil
}

// DeleteByValue removes the record for a value. Returns whether a record
// existed and was removed. Removal is immediate and permanent; there is no
// soft-delete or tombstone state.
func (s *Store) DeleteByValue(ctx context.Context, value string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM strings WHERE id = ?`, analysis.Digest(value))
	if err != nil {
		return false, errors.Wrap(err, "delete record")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "delete record: rows affected")
	}
	return affected > 0, nil
}

// boolColumn maps a bool onto the INTEGER column representation.
func boolColumn(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
