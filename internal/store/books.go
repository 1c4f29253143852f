package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Book is one accounting entity with its own operation log.
type Book struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// EnsureBook returns the book called name, creating it if needed.
func (s *Store) EnsureBook(ctx context.Context, name string) (Book, error) {
	b, err := s.Book(ctx, name)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, ErrBookNotFound) {
		return Book{}, err
	}

	b = Book{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	_, err = s.writer.ExecContext(ctx,
		`INSERT INTO books (id, name, created_at) VALUES (?, ?, ?)`,
		b.ID, b.Name, b.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Book{}, fmt.Errorf("insert book: %w", err)
	}
	s.log.Info().Str("book", name).Str("id", b.ID).Msg("book created")
	return b, nil
}

// Book looks a book up by name.
func (s *Store) Book(ctx context.Context, name string) (Book, error) {
	var b Book
	var createdAt string
	err := s.reader.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM books WHERE name = ?`, name,
	).Scan(&b.ID, &b.Name, &createdAt)
	if err == sql.ErrNoRows {
		return Book{}, fmt.Errorf("%w: %q", ErrBookNotFound, name)
	}
	if err != nil {
		return Book{}, fmt.Errorf("get book: %w", err)
	}
	b.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	return b, nil
}

// ListBooks returns every book ordered by name.
func (s *Store) ListBooks(ctx context.Context) ([]Book, error) {
	rows, err := s.reader.QueryContext(ctx, `SELECT id, name, created_at FROM books ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		var b Book
		var createdAt string
		if err := rows.Scan(&b.ID, &b.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		b.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		books = append(books, b)
	}
	return books, rows.Err()
}
