package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/thanvish21/systemx/internal/profile"
)

// ProfileSlot is the well-known slot the candidate profile is stored under.
const ProfileSlot = "system_x_profile"

// ProfileRepo is the single-writer persistence surface for the profile.
// Load treats a corrupt record as absent and removes it.
type ProfileRepo interface {
	// Save stores (or overwrites) the profile in the well-known slot.
	Save(ctx context.Context, p profile.Profile) error

	// Load returns the stored profile, or nil if none exists.
	// A record that fails to parse is deleted and reported as absent.
	Load(ctx context.Context) (*profile.Profile, error)

	// Delete removes the stored profile. No-op if absent.
	Delete(ctx context.Context) error
}

type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) Save(ctx context.Context, p profile.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO profiles (slot, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		ProfileSlot, string(data))
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Load(ctx context.Context) (*profile.Profile, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM profiles WHERE slot = ?`, ProfileSlot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	var p profile.Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		// Corrupt record: clear it and treat as absent.
		_ = r.Delete(ctx)
		return nil, nil
	}
	return &p, nil
}

func (r *profileRepo) Delete(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM profiles WHERE slot = ?`, ProfileSlot)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
