package repository

import (
	"context"
	"database/sql"
)

// RecommendationRepo handles recommendations.
type RecommendationRepo struct {
	db *sql.DB
}

func NewRecommendationRepo(db *sql.DB) *RecommendationRepo { return &RecommendationRepo{db: db} }

func (r *RecommendationRepo) Insert(ctx context.Context, rec Recommendation) error {
	status := rec.Status
	if status == "" {
		status = StatusSuggested
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO recommendations(id, profile_id, product_title, product_image_url, price, purchase_link, is_saved, status, created_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`, rec.ID, rec.ProfileID, rec.ProductTitle, rec.ImageURL, rec.Price, rec.PurchaseLink, boolToInt(rec.Saved), status)
	return err
}

func (r *RecommendationRepo) Get(ctx context.Context, id string) (*Recommendation, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, profile_id, product_title, product_image_url, price, purchase_link, is_saved, status, created_at
	FROM recommendations WHERE id = ?`, id)
	rec, err := scanRecommendation(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListByProfile returns recommendations for a profile in insertion order.
func (r *RecommendationRepo) ListByProfile(ctx context.Context, profileID string) ([]Recommendation, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, profile_id, product_title, product_image_url, price, purchase_link, is_saved, status, created_at
	FROM recommendations WHERE profile_id = ? ORDER BY created_at, rowid`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Recommendation
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *RecommendationRepo) UpdateSaved(ctx context.Context, id string, saved bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE recommendations SET is_saved = ? WHERE id = ?`, boolToInt(saved), id)
	return err
}

func (r *RecommendationRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE recommendations SET status = ? WHERE id = ?`, status, id)
	return err
}

// CycleStatus advances a recommendation through the suggested/purchased/wrapped
// cycle and returns the new status.
func (r *RecommendationRepo) CycleStatus(ctx context.Context, id string) (string, error) {
	rec, err := r.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", sql.ErrNoRows
	}
	next := NextStatus(rec.Status)
	if err := r.UpdateStatus(ctx, id, next); err != nil {
		return "", err
	}
	return next, nil
}

func scanRecommendation(rs rowScanner) (Recommendation, error) {
	var rec Recommendation
	var saved int
	err := rs.Scan(&rec.ID, &rec.ProfileID, &rec.ProductTitle, &rec.ImageURL,
		&rec.Price, &rec.PurchaseLink, &saved, &rec.Status, &rec.CreatedAt)
	rec.Saved = saved != 0
	return rec, err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
