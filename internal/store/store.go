// Package store persists books and their operation logs in SQLite. Derived
// state is never stored: an engine is rebuilt by replaying a book's operations.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/Fr4ncx-04/Balance/internal/logger"
)

// ErrBookNotFound is returned when no book has the requested name.
var ErrBookNotFound = errors.New("book not found")

type Store struct {
	writer *sql.DB
	reader *sql.DB
	log    zerolog.Logger
}

func Open(dbPath string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)", dbPath)

	writer, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open writer: %w", err)
	}
	writer.SetMaxOpenConns(1)

	reader, err := sql.Open("sqlite", dsn)
	if err != nil {
		writer.Close()
		return nil, fmt.Errorf("open reader: %w", err)
	}
	reader.SetMaxOpenConns(runtime.NumCPU())

	s := &Store{writer: writer, reader: reader, log: logger.WithComponent("store")}

	if err := s.migrate(context.Background()); err != nil {
		s.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s.log.Debug().Str("path", dbPath).Msg("store opened")
	return s, nil
}

func (s *Store) Close() error {
	err1 := s.writer.Close()
	err2 := s.reader.Close()
	if err1 != nil {
		return err1
	}
	return err2
}
