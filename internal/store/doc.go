// Package store provides SQLite-backed content-addressed persistence for
// string records.
//
// Each distinct string value is stored at most once, keyed by the lower-hex
// SHA-256 of its UTF-8 bytes. The insert-if-absent check is a single atomic
// write (INSERT ... ON CONFLICT(id) DO NOTHING) rather than a separate
// existence check followed by a write, so two callers racing on the same
// value can never both succeed.
//
// Records are immutable once written; the only mutation is DeleteByValue,
// which is immediate and permanent. Reads observe a consistent snapshot per
// call, and every query carries a deterministic ORDER BY (creation-time
// descending, id tiebreak).
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
//
// The frequency map column is serialized through internal/canonical so a
// stored record's properties are byte-reproducible from its value.
package store
