package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Fr4ncx-04/Balance/internal/model"
)

// AppendOperation records op at the end of the book's log and returns its
// sequence number. The caller is expected to have applied op to an engine
// first, so only operations that posted successfully are stored.
func (s *Store) AppendOperation(ctx context.Context, bookID string, op model.Operation) (int64, error) {
	payload, err := json.Marshal(op)
	if err != nil {
		return 0, fmt.Errorf("marshal operation: %w", err)
	}

	res, err := s.writer.ExecContext(ctx,
		`INSERT INTO operations (book_id, kind, payload, posted_at) VALUES (?, ?, ?, ?)`,
		bookID, string(op.Kind), string(payload), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("insert operation: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("operation id: %w", err)
	}
	s.log.Debug().Str("book", bookID).Str("kind", string(op.Kind)).Int64("seq", seq).Msg("operation recorded")
	return seq, nil
}

// AppendOperations records ops in one transaction: either all are stored
// or none are.
func (s *Store) AppendOperations(ctx context.Context, bookID string, ops []model.Operation) error {
	tx, err := s.writer.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	postedAt := time.Now().UTC().Format(time.RFC3339Nano)
	for i, op := range ops {
		payload, err := json.Marshal(op)
		if err != nil {
			return fmt.Errorf("marshal operation %d: %w", i, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO operations (book_id, kind, payload, posted_at) VALUES (?, ?, ?, ?)`,
			bookID, string(op.Kind), string(payload), postedAt,
		); err != nil {
			return fmt.Errorf("insert operation %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.log.Debug().Str("book", bookID).Int("count", len(ops)).Msg("operations recorded")
	return nil
}

// Operations returns the book's operations in the order they were recorded.
func (s *Store) Operations(ctx context.Context, bookID string) ([]model.Operation, error) {
	rows, err := s.reader.QueryContext(ctx,
		`SELECT id, payload FROM operations WHERE book_id = ? ORDER BY id`, bookID)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	defer rows.Close()

	var ops []model.Operation
	for rows.Next() {
		var id int64
		var payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		var op model.Operation
		if err := json.Unmarshal([]byte(payload), &op); err != nil {
			return nil, fmt.Errorf("decode operation %d: %w", id, err)
		}
		ops = append(ops, op)
	}
	return ops, rows.Err()
}
