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

// ProactiveRepository handles the proactive send log
type ProactiveRepository struct {
	db *sqlx.DB
}

// attemptSQL represents a proactive attempt for SQL operations
type attemptSQL struct {
	ID       int64     `db:"id"`
	UserID   int64     `db:"user_id"`
	Content  string    `db:"content"`
	Category string    `db:"category"`
	SentAt   time.Time `db:"sent_at"`
}

// NewProactiveRepository creates a new proactive attempt repository
func NewProactiveRepository(database *sqlx.DB) *ProactiveRepository {
	return &ProactiveRepository{db: database}
}

// Create logs a sent proactive message and returns its ID
func (r *ProactiveRepository) Create(ctx context.Context, a domain.ProactiveAttempt) (int64, error) {
	sqlAttempt := &attemptSQL{
		UserID:   a.UserID,
		Content:  a.Content,
		Category: a.Category,
		SentAt:   a.SentAt,
	}
	if sqlAttempt.SentAt.IsZero() {
		sqlAttempt.SentAt = time.Now().UTC()
	}

	var id int64
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		query := `
			INSERT INTO proactive_attempts (user_id, content, category, sent_at)
			VALUES (:user_id, :content, :category, :sent_at)
		`
		result, err := r.db.NamedExecContext(ctx, query, sqlAttempt)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("create proactive attempt: %w", err)}
		}
		id, err = result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		return nil
	})
	return id, err
}

// Latest retrieves the most recent proactive attempt for the user, nil when
// there is none
func (r *ProactiveRepository) Latest(ctx context.Context, userID int64) (*domain.ProactiveAttempt, error) {
	var sqlAttempt attemptSQL
	query := `
		SELECT * FROM proactive_attempts
		WHERE user_id = ?
		ORDER BY sent_at DESC, id DESC
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &sqlAttempt, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get latest proactive attempt: %w", err)
	}
	return r.toDomainAttempt(&sqlAttempt), nil
}

// RecentForUser retrieves the last N proactive attempts, newest first
func (r *ProactiveRepository) RecentForUser(ctx context.Context, userID int64, limit int) ([]domain.ProactiveAttempt, error) {
	var sqlAttempts []attemptSQL
	query := `
		SELECT * FROM proactive_attempts
		WHERE user_id = ?
		ORDER BY sent_at DESC, id DESC
		LIMIT ?
	`
	if err := r.db.SelectContext(ctx, &sqlAttempts, query, userID, limit); err != nil {
		return nil, fmt.Errorf("get recent proactive attempts: %w", err)
	}

	attempts := make([]domain.ProactiveAttempt, len(sqlAttempts))
	for i, a := range sqlAttempts {
		attempts[i] = *r.toDomainAttempt(&a)
	}
	return attempts, nil
}

// DeleteOlderThan removes attempts sent before the cutoff, returning the
// number of rows deleted
func (r *ProactiveRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM proactive_attempts WHERE sent_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old proactive attempts: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete old proactive attempts rows: %w", err)
	}
	return rows, nil
}

// toDomainAttempt converts SQL representation to domain model
func (r *ProactiveRepository) toDomainAttempt(a *attemptSQL) *domain.ProactiveAttempt {
	return &domain.ProactiveAttempt{
		ID:       a.ID,
		UserID:   a.UserID,
		Content:  a.Content,
		Category: a.Category,
		SentAt:   a.SentAt,
	}
}
