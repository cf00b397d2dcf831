package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmorel/devfolio/internal/domain"
)

// stateKey is the fixed storage key the whole blog state lives under,
// mirroring the single local-storage entry the data set originally occupied.
const stateKey = "blog-state"

// StateRepository implements domain.StateStore on a single keyed row. The
// entire state tree is serialized to JSON and rewritten wholesale on every
// save; dates travel as RFC 3339 strings.
type StateRepository struct {
	db *sql.DB
}

var _ domain.StateStore = (*StateRepository)(nil)

// Load reads and deserializes the stored state. Returns domain.ErrNotFound
// when no state has been saved yet.
func (r *StateRepository) Load(ctx context.Context) (*domain.BlogState, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx,
		"SELECT data FROM blog_state WHERE storage_key = ?", stateKey,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query blog state: %w", err)
	}

	state := &domain.BlogState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("parse blog state: %w", err)
	}
	return state, nil
}

// Save serializes the whole tree and replaces the stored record.
func (r *StateRepository) Save(ctx context.Context, state *domain.BlogState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("serialize blog state: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO blog_state (storage_key, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(storage_key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		stateKey, data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save blog state: %w", err)
	}
	return nil
}
