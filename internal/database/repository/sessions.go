package repository

import (
	"context"
	"database/sql"
)

// SessionRepo handles swipe sessions.
type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{db: db} }

func (r *SessionRepo) Insert(ctx context.Context, s SwipeSession) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO swipe_sessions(id, profile_id, preferences, rejected_tags, created_at)
	VALUES(?, ?, ?, ?, CURRENT_TIMESTAMP);
	`, s.ID, s.ProfileID, s.Preferences, s.RejectedTags)
	return err
}

// ListByProfile returns sessions newest first.
func (r *SessionRepo) ListByProfile(ctx context.Context, profileID string) ([]SwipeSession, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, profile_id, preferences, rejected_tags, created_at
	FROM swipe_sessions WHERE profile_id = ? ORDER BY created_at DESC, id`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SwipeSession
	for rows.Next() {
		var s SwipeSession
		if err := rows.Scan(&s.ID, &s.ProfileID, &s.Preferences, &s.RejectedTags, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
