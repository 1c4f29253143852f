package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Fr4ncx-04/Balance/internal/config"
	"github.com/Fr4ncx-04/Balance/internal/engine"
	"github.com/Fr4ncx-04/Balance/internal/logger"
	"github.com/Fr4ncx-04/Balance/internal/model"
	"github.com/Fr4ncx-04/Balance/internal/store"
)

// workspace is an initialized book directory with its store open.
type workspace struct {
	dir   string
	cfg   *config.Config
	store *store.Store
	book  store.Book
	log   zerolog.Logger
}

func openWorkspace(ctx context.Context, repoDir string) (*workspace, error) {
	dir, err := filepath.Abs(repoDir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("%w (run `balance init` first)", err)
	}
	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.FileName, err)
	}
	if err := logger.Setup(cfg.Logger()); err != nil {
		return nil, fmt.Errorf("configuring logger: %w", err)
	}

	st, err := store.Open(resolve(dir, cfg.Store.Path))
	if err != nil {
		logger.Close()
		return nil, fmt.Errorf("opening store: %w", err)
	}
	book, err := st.EnsureBook(ctx, cfg.Store.Book)
	if err != nil {
		st.Close()
		logger.Close()
		return nil, fmt.Errorf("opening book: %w", err)
	}

	return &workspace{
		dir:   dir,
		cfg:   cfg,
		store: st,
		book:  book,
		log:   logger.WithComponent("commands"),
	}, nil
}

func (w *workspace) Close() error {
	return errors.Join(w.store.Close(), logger.Close())
}

// newEngine builds an empty engine from the book configuration.
func (w *workspace) newEngine() (*engine.Engine, error) {
	rates, err := w.cfg.Rates()
	if err != nil {
		return nil, err
	}
	return engine.New(
		engine.WithRates(rates),
		engine.WithCompany(w.cfg.Business.Name),
		engine.WithLogger(logger.WithComponent("engine")),
	), nil
}

// engine rebuilds the book's engine by replaying its recorded operations.
func (w *workspace) engine(ctx context.Context) (*engine.Engine, error) {
	e, err := w.newEngine()
	if err != nil {
		return nil, err
	}
	ops, err := w.store.Operations(ctx, w.book.ID)
	if err != nil {
		return nil, err
	}
	if err := e.Replay(ops); err != nil {
		return nil, err
	}
	return e, nil
}

// apply validates op against the replayed book and records it only if the
// engine accepted it.
func (w *workspace) apply(ctx context.Context, op model.Operation) (model.JournalEntry, error) {
	e, err := w.engine(ctx)
	if err != nil {
		return model.JournalEntry{}, err
	}
	entry, err := e.Apply(op)
	if err != nil {
		return model.JournalEntry{}, err
	}
	if _, err := w.store.AppendOperation(ctx, w.book.ID, op); err != nil {
		return model.JournalEntry{}, err
	}
	w.log.Info().Str("book", w.book.Name).Str("entry", entry.ID).Str("kind", string(op.Kind)).Msg("operation recorded")
	return entry, nil
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// parseDate returns the operation date: the --date flag if set, else today.
// Dates are stored at midnight UTC so replays reproduce the same entry IDs.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --date %q: %w", s, err)
	}
	return d, nil
}

func parseAmount(flag, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing --%s %q: %w", flag, s, err)
	}
	return d, nil
}

// parseNamedAmounts parses repeated NAME=VALUE flags.
func parseNamedAmounts(flag string, pairs []string) ([]model.NamedAmount, error) {
	out := make([]model.NamedAmount, 0, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("--%s %q: expected NAME=VALUE", flag, p)
		}
		amt, err := parseAmount(flag, value)
		if err != nil {
			return nil, err
		}
		out = append(out, model.NamedAmount{Name: name, Amount: amt})
	}
	return out, nil
}
