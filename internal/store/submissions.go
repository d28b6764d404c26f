// internal/store/submissions.go
// Submission persistence, including the latest-valid-per-user query the
// scheduler depends on.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dcnick3/breakgt/internal/models"
)

// SubmissionStore handles submission data access.
type SubmissionStore struct {
	db *sql.DB
}

// NewSubmissionStore creates a new submission store.
func NewSubmissionStore(db *sql.DB) *SubmissionStore {
	return &SubmissionStore{db: db}
}

// Add inserts a new submission, ignoring any caller-supplied ID.
func (s *SubmissionStore) Add(ctx context.Context, sub models.Submission) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO submissions (user_id, code, datetime, valid) VALUES (?, ?, ?, ?)`,
		sub.UserID, sub.Code, sub.Datetime, sub.Valid,
	)
	if err != nil {
		return 0, fmt.Errorf("store: add submission: %w", err)
	}
	return res.LastInsertId()
}

// ActiveSubmissions returns, per user, their most recent valid submission:
// the one with the greatest datetime among that user's valid submissions.
func (s *SubmissionStore) ActiveSubmissions(ctx context.Context) ([]models.ActiveSubmission, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sub.id, sub.user_id, sub.code
		FROM submissions sub
		INNER JOIN (
			SELECT user_id, MAX(datetime) AS dt
			FROM submissions
			WHERE valid = 1
			GROUP BY user_id
		) latest ON latest.user_id = sub.user_id AND latest.dt = sub.datetime
		WHERE sub.valid = 1
	`)
	if err != nil {
		return nil, fmt.Errorf("store: active submissions: %w", err)
	}
	defer rows.Close()

	var out []models.ActiveSubmission
	for rows.Next() {
		var a models.ActiveSubmission
		if err := rows.Scan(&a.SubmissionID, &a.UserID, &a.Code); err != nil {
			return nil, fmt.Errorf("store: scan active submission: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
