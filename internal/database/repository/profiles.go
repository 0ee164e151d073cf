package repository

import (
	"context"
	"database/sql"
)

// ProfileRepo handles recipient profiles.
type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{db: db} }

func (r *ProfileRepo) Insert(ctx context.Context, p RecipientProfile) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO recipient_profiles(id, user_id, name, relation, age, occasion, budget_min, budget_max, created_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`, p.ID, p.UserID, p.Name, p.Relation, p.Age, p.Occasion, p.BudgetMin, p.BudgetMax)
	return err
}

func (r *ProfileRepo) Get(ctx context.Context, id string) (*RecipientProfile, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, user_id, name, relation, age, occasion, budget_min, budget_max, created_at
	FROM recipient_profiles WHERE id = ?`, id)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByUser returns profiles newest first.
func (r *ProfileRepo) ListByUser(ctx context.Context, userID string) ([]RecipientProfile, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, user_id, name, relation, age, occasion, budget_min, budget_max, created_at
	FROM recipient_profiles WHERE user_id = ? ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecipientProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(rs rowScanner) (RecipientProfile, error) {
	var p RecipientProfile
	err := rs.Scan(&p.ID, &p.UserID, &p.Name, &p.Relation, &p.Age, &p.Occasion,
		&p.BudgetMin, &p.BudgetMax, &p.CreatedAt)
	return p, err
}
