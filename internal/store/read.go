package store

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"

	"github.com/strand-db/strand/internal/analysis"
	"github.com/strand-db/strand/internal/filter"
	"github.com/strand-db/strand/internal/filtersql"
)

// GetByValue retrieves the record for a value.
// Returns NotFoundError if no record exists.
//
// Lookup goes through the content address rather than the value column, so
// it uses the primary key and matches the exact byte sequence.
func (s *Store) GetByValue(ctx context.Context, value string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, value, length, is_palindrome, unique_characters, word_count, character_frequency, created_at
		FROM strings
		WHERE id = ?
	`, analysis.Digest(value))

	rec, err := scanRecordRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, &NotFoundError{Value: value}
	}
	if err != nil {
		return Record{}, errors.Wrap(err, "get by value")
	}
	return rec, nil
}

// Query returns all records matching a compiled filter, in the reference
// order (creation-time descending, id ascending tiebreak). Returns an empty
// slice, not nil, when nothing matches.
//
// The SQL is produced by filtersql and each call runs as one statement, so
// it observes a consistent snapshot: a partially-written record is never
// visible.
func (s *Store) Query(ctx context.Context, c filter.Compiled) ([]Record, error) {
	query, params := filtersql.Compile(c)

	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, errors.Wrap(err, "query records")
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate records")
	}

	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// scanRecord scans a result set row into a Record.
func scanRecord(rows *sql.Rows) (Record, error) {
	var rec Record
	var isPalindrome int64
	var freqJSON, createdAt string

	if err := rows.Scan(
		&rec.ID, &rec.Value, &rec.Properties.Length, &isPalindrome,
		&rec.Properties.UniqueCharacters, &rec.Properties.WordCount,
		&freqJSON, &createdAt,
	); err != nil {
		return Record{}, errors.Wrap(err, "scan record")
	}

	return finishRecord(rec, isPalindrome, freqJSON, createdAt)
}

// scanRecordRow scans a single row into a Record. sql.ErrNoRows passes
// through untouched so callers can map it to NotFoundError.
func scanRecordRow(row *sql.Row) (Record, error) {
	var rec Record
	var isPalindrome int64
	var freqJSON, createdAt string

	if err := row.Scan(
		&rec.ID, &rec.Value, &rec.Properties.Length, &isPalindrome,
		&rec.Properties.UniqueCharacters, &rec.Properties.WordCount,
		&freqJSON, &createdAt,
	); err != nil {
		return Record{}, err
	}

	return finishRecord(rec, isPalindrome, freqJSON, createdAt)
}

// finishRecord decodes the serialized columns shared by both scan paths.
func finishRecord(rec Record, isPalindrome int64, freqJSON, createdAt string) (Record, error) {
	rec.Properties.IsPalindrome = isPalindrome != 0
	rec.Properties.SHA256 = rec.ID

	freq, err := unmarshalFrequency(freqJSON)
	if err != nil {
		return Record{}, err
	}
	rec.Properties.CharacterFrequency = freq

	ts, err := parseCreatedAt(createdAt)
	if err != nil {
		return Record{}, errors.Wrap(err, "parse created_at")
	}
	rec.CreatedAt = ts

	return rec, nil
}
