package character

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/vop-sheet/internal/errors"
	"github.com/KirkDiggler/vop-sheet/internal/pkg/clock"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteConfig contains configuration for the SQLite repository
type SQLiteConfig struct {
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("path", cfg.Path, vb)
	return vb.Build()
}

// SQLiteRepository stores each slot as one row of the save_slots table
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// NewSQLite opens (creating if needed) the database file and applies the
// schema. The caller owns Close.
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	path := filepath.Clean(cfg.Path)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, errors.Wrapf(err, "failed to create %s", dir)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite db")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	repo := &SQLiteRepository{db: db, clock: c}
	if err := repo.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

// Close closes the underlying database
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *SQLiteRepository) migrate(ctx context.Context) error {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return errors.Wrap(err, "failed to list migrations")
	}
	sort.Strings(names)

	for _, name := range names {
		stmt, err := migrationsFS.ReadFile(name)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", name)
		}
		if strings.TrimSpace(string(stmt)) == "" {
			continue
		}
		if _, err := r.db.ExecContext(ctx, string(stmt)); err != nil {
			return errors.Wrapf(err, "failed to apply %s", name)
		}
	}
	return nil
}

// Load reads the sheet saved in a slot
func (r *SQLiteRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}

	var (
		payload string
		savedAt int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT payload, saved_at FROM save_slots WHERE slot = ?`, input.Slot,
	).Scan(&payload, &savedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SlotEmpty(input.Slot)
		}
		return nil, errors.Wrapf(err, "failed to load slot %s", input.Slot)
	}

	character, err := decode(input.Slot, []byte(payload))
	if err != nil {
		return nil, err
	}
	return &LoadOutput{Character: character, SavedAt: time.UnixMilli(savedAt).UTC()}, nil
}

// Save upserts the slot row
func (r *SQLiteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := encode(input.Character)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now().UTC()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO save_slots (slot, payload, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at`,
		input.Slot, string(data), now.UnixMilli(),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save slot %s", input.Slot)
	}

	return &SaveOutput{SavedAt: now}, nil
}

// Delete removes the slot row
func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM save_slots WHERE slot = ?`, input.Slot); err != nil {
		return nil, errors.Wrapf(err, "failed to delete slot %s", input.Slot)
	}
	return &DeleteOutput{}, nil
}
