package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/companion/pkg/domain"
)

// BoundaryRepository handles boundary-related database operations
type BoundaryRepository struct {
	db *sqlx.DB
}

// boundarySQL represents a boundary for SQL operations
type boundarySQL struct {
	ID                 int64      `db:"id"`
	UserID             int64      `db:"user_id"`
	BoundaryType       string     `db:"boundary_type"`
	BoundaryValue      string     `db:"boundary_value"`
	Active             bool       `db:"active"`
	UserInitiatedAfter *time.Time `db:"user_initiated_after"`
	CreatedAt          time.Time  `db:"created_at"`
}

// NewBoundaryRepository creates a new boundary repository
func NewBoundaryRepository(database *sqlx.DB) *BoundaryRepository {
	return &BoundaryRepository{db: database}
}

// Create inserts a new boundary and returns its ID
func (r *BoundaryRepository) Create(ctx context.Context, b domain.Boundary) (int64, error) {
	sqlBoundary := &boundarySQL{
		UserID:        b.UserID,
		BoundaryType:  string(b.Type),
		BoundaryValue: b.Value,
		Active:        b.Active,
	}

	query := `
		INSERT INTO boundaries (user_id, boundary_type, boundary_value, active)
		VALUES (:user_id, :boundary_type, :boundary_value, :active)
	`
	result, err := r.db.NamedExecContext(ctx, query, sqlBoundary)
	if err != nil {
		return 0, fmt.Errorf("create boundary: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get insert id: %w", err)
	}
	return id, nil
}

// ExistsActive reports whether an identical active boundary already exists
func (r *BoundaryRepository) ExistsActive(ctx context.Context, userID int64, btype domain.BoundaryType, value string) (bool, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM boundaries
		WHERE user_id = ? AND boundary_type = ? AND boundary_value = ? AND active = 1
	`
	if err := r.db.GetContext(ctx, &count, query, userID, string(btype), value); err != nil {
		return false, fmt.Errorf("check boundary exists: %w", err)
	}
	return count > 0, nil
}

// LatestActiveSpace retrieves the most recent active space boundary, nil when
// there is none. Behavior and frequency types both count as space.
func (r *BoundaryRepository) LatestActiveSpace(ctx context.Context, userID int64) (*domain.Boundary, error) {
	var sqlBoundary boundarySQL
	query := `
		SELECT * FROM boundaries
		WHERE user_id = ? AND boundary_type IN (?, ?) AND active = 1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &sqlBoundary, query, userID,
		string(domain.BoundaryBehavior), string(domain.BoundaryFrequency))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get space boundary: %w", err)
	}
	return r.toDomainBoundary(&sqlBoundary), nil
}

// MarkUserInitiated stamps the first user contact on active space boundaries
// that have not been stamped yet
func (r *BoundaryRepository) MarkUserInitiated(ctx context.Context, userID int64, ts time.Time) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE boundaries
			SET user_initiated_after = ?
			WHERE user_id = ? AND boundary_type IN (?, ?)
			AND active = 1 AND user_initiated_after IS NULL
		`
		_, err := r.db.ExecContext(ctx, query, ts, userID,
			string(domain.BoundaryBehavior), string(domain.BoundaryFrequency))
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("mark user initiated: %w", err)}
		}
		return nil
	})
}

// DeactivateSpace lifts active space boundaries, reporting whether any were
// actually lifted
func (r *BoundaryRepository) DeactivateSpace(ctx context.Context, userID int64) (bool, error) {
	query := `
		UPDATE boundaries
		SET active = 0
		WHERE user_id = ? AND boundary_type IN (?, ?) AND active = 1
	`
	result, err := r.db.ExecContext(ctx, query, userID,
		string(domain.BoundaryBehavior), string(domain.BoundaryFrequency))
	if err != nil {
		return false, fmt.Errorf("deactivate space boundary: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deactivate space boundary rows: %w", err)
	}
	return rows > 0, nil
}

// ActiveValues retrieves active boundary values of one type for the user
func (r *BoundaryRepository) ActiveValues(ctx context.Context, userID int64, btype domain.BoundaryType) ([]string, error) {
	var values []string
	query := `
		SELECT boundary_value FROM boundaries
		WHERE user_id = ? AND boundary_type = ? AND active = 1
		ORDER BY created_at, id
	`
	if err := r.db.SelectContext(ctx, &values, query, userID, string(btype)); err != nil {
		return nil, fmt.Errorf("get boundary values: %w", err)
	}
	return values, nil
}

// ActiveBoundaries retrieves all active boundaries for the user
func (r *BoundaryRepository) ActiveBoundaries(ctx context.Context, userID int64) ([]domain.Boundary, error) {
	var sqlBoundaries []boundarySQL
	query := `
		SELECT * FROM boundaries
		WHERE user_id = ? AND active = 1
		ORDER BY created_at, id
	`
	if err := r.db.SelectContext(ctx, &sqlBoundaries, query, userID); err != nil {
		return nil, fmt.Errorf("get active boundaries: %w", err)
	}

	boundaries := make([]domain.Boundary, len(sqlBoundaries))
	for i, b := range sqlBoundaries {
		boundaries[i] = *r.toDomainBoundary(&b)
	}
	return boundaries, nil
}

// ListForUser retrieves all boundaries for the user, active and lifted
func (r *BoundaryRepository) ListForUser(ctx context.Context, userID int64) ([]domain.Boundary, error) {
	var sqlBoundaries []boundarySQL
	query := `SELECT * FROM boundaries WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	if err := r.db.SelectContext(ctx, &sqlBoundaries, query, userID); err != nil {
		return nil, fmt.Errorf("list boundaries: %w", err)
	}

	boundaries := make([]domain.Boundary, len(sqlBoundaries))
	for i, b := range sqlBoundaries {
		boundaries[i] = *r.toDomainBoundary(&b)
	}
	return boundaries, nil
}

// Delete deactivates one boundary owned by the user, reporting whether an
// active row was flipped. Rows are kept for history, deactivation is the
// user-facing delete.
func (r *BoundaryRepository) Delete(ctx context.Context, userID, boundaryID int64) (bool, error) {
	query := "UPDATE boundaries SET active = 0 WHERE id = ? AND user_id = ? AND active = 1"
	result, err := r.db.ExecContext(ctx, query, boundaryID, userID)
	if err != nil {
		return false, fmt.Errorf("delete boundary %d: %w", boundaryID, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete boundary %d rows: %w", boundaryID, err)
	}
	return rows > 0, nil
}

// toDomainBoundary converts SQL representation to domain model
func (r *BoundaryRepository) toDomainBoundary(b *boundarySQL) *domain.Boundary {
	return &domain.Boundary{
		ID:                 b.ID,
		UserID:             b.UserID,
		Type:               domain.BoundaryType(b.BoundaryType),
		Value:              b.BoundaryValue,
		Active:             b.Active,
		UserInitiatedAfter: b.UserInitiatedAfter,
		CreatedAt:          b.CreatedAt,
	}
}
