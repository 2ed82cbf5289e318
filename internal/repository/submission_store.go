package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"esg-platform/internal/domain"
)

// updateReview moves a submission row out of PENDING. The status guard in the
// WHERE clause makes the transition race-safe: two concurrent reviewers can
// both read PENDING, but only one UPDATE matches.
func updateReview(ctx context.Context, db *sqlx.DB, table string, base *domain.SubmissionBase) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $2, reviewed_by = $3, reviewed_at = $4, review_comments = $5, updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'`, table)

	result, err := db.ExecContext(ctx, query,
		base.ID, base.Status, base.ReviewedBy, base.ReviewedAt, base.ReviewComments)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		var exists bool
		check := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)`, table)
		if err := db.GetContext(ctx, &exists, check, base.ID); err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrAlreadyReviewed
	}
	return nil
}
