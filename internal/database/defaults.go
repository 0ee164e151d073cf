package database

import (
	"context"
	"database/sql"
)

// GuestUserID is the single local user every profile belongs to.
// Multi-user accounts are out of scope; the column exists so the schema
// doesn't need to change if they ever arrive.
const GuestUserID = "guest_user"

// DefaultProfileID is the sentinel profile recommendations fall back to
// when the wizard produces results before a profile has been saved.
const DefaultProfileID = "default_tester_profile"

// SeedDefaults ensures the guest user and the sentinel fallback profile exist.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	return WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO users (id, email, provider) VALUES (?, ?, 'guest')`,
			GuestUserID, "guest@giftwiz.ai")
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
		INSERT OR IGNORE INTO recipient_profiles (id, user_id, name, relation, age, occasion, budget_min, budget_max)
		VALUES (?, ?, 'Tester', 'Friend', '25', 'Birthday', 0, 100)`,
			DefaultProfileID, GuestUserID)
		return err
	})
}
