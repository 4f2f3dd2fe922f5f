package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/companion/pkg/domain"
)

// TurnRepository handles conversation turn database operations
type TurnRepository struct {
	db *sqlx.DB
}

// turnSQL represents a conversation turn for SQL operations
type turnSQL struct {
	ID               int64     `db:"id"`
	UserID           int64     `db:"user_id"`
	Role             string    `db:"role"`
	Content          string    `db:"content"`
	Kind             string    `db:"kind"`
	DetectedMood     string    `db:"detected_mood"`
	IsQuestion       bool      `db:"is_question"`
	QuestionTopic    string    `db:"question_topic"`
	QuestionAnswered bool      `db:"question_answered"`
	CreatedAt        time.Time `db:"created_at"`
}

// NewTurnRepository creates a new turn repository
func NewTurnRepository(database *sqlx.DB) *TurnRepository {
	return &TurnRepository{db: database}
}

// Create inserts a conversation turn and returns its ID
func (r *TurnRepository) Create(ctx context.Context, t domain.Turn) (int64, error) {
	sqlTurn := &turnSQL{
		UserID:        t.UserID,
		Role:          string(t.Role),
		Content:       t.Content,
		Kind:          string(t.Kind),
		DetectedMood:  string(t.DetectedMood),
		IsQuestion:    t.IsQuestion,
		QuestionTopic: t.QuestionTopic,
		CreatedAt:     t.CreatedAt,
	}
	if sqlTurn.CreatedAt.IsZero() {
		sqlTurn.CreatedAt = time.Now().UTC()
	}

	var id int64
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		query := `
			INSERT INTO turns (user_id, role, content, kind, detected_mood, is_question, question_topic, created_at)
			VALUES (:user_id, :role, :content, :kind, :detected_mood, :is_question, :question_topic, :created_at)
		`
		result, err := r.db.NamedExecContext(ctx, query, sqlTurn)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("create turn: %w", err)}
		}
		id, err = result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		return nil
	})
	return id, err
}

// RecentTurns retrieves the last N turns in conversation order, oldest first
func (r *TurnRepository) RecentTurns(ctx context.Context, userID int64, limit int) ([]domain.Turn, error) {
	var sqlTurns []turnSQL
	query := `
		SELECT * FROM (
			SELECT * FROM turns WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ?
		) ORDER BY created_at ASC, id ASC
	`
	if err := r.db.SelectContext(ctx, &sqlTurns, query, userID, limit); err != nil {
		return nil, fmt.Errorf("get recent turns: %w", err)
	}

	turns := make([]domain.Turn, len(sqlTurns))
	for i, t := range sqlTurns {
		turns[i] = *r.toDomainTurn(&t)
	}
	return turns, nil
}

// RecentBotContents retrieves the last N bot messages, newest first
func (r *TurnRepository) RecentBotContents(ctx context.Context, userID int64, limit int) ([]string, error) {
	var contents []string
	query := `
		SELECT content FROM turns
		WHERE user_id = ? AND role = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	if err := r.db.SelectContext(ctx, &contents, query, userID, string(domain.RoleBot), limit); err != nil {
		return nil, fmt.Errorf("get recent bot contents: %w", err)
	}
	return contents, nil
}

// RecentMoods retrieves detected moods from recent user turns, newest first
func (r *TurnRepository) RecentMoods(ctx context.Context, userID int64, limit int) ([]domain.Mood, error) {
	var moods []string
	query := `
		SELECT detected_mood FROM turns
		WHERE user_id = ? AND role = ? AND detected_mood != ''
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	if err := r.db.SelectContext(ctx, &moods, query, userID, string(domain.RoleUser), limit); err != nil {
		return nil, fmt.Errorf("get recent moods: %w", err)
	}

	result := make([]domain.Mood, len(moods))
	for i, m := range moods {
		result[i] = domain.Mood(m)
	}
	return result, nil
}

// PendingQuestionTopics retrieves topics of unanswered bot questions, newest
// first
func (r *TurnRepository) PendingQuestionTopics(ctx context.Context, userID int64, limit int) ([]string, error) {
	var topics []string
	query := `
		SELECT question_topic FROM turns
		WHERE user_id = ? AND role = ? AND is_question = 1 AND question_answered = 0
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	if err := r.db.SelectContext(ctx, &topics, query, userID, string(domain.RoleBot), limit); err != nil {
		return nil, fmt.Errorf("get pending question topics: %w", err)
	}
	return topics, nil
}

// HasPending reports whether the user has any unanswered bot question
func (r *TurnRepository) HasPending(ctx context.Context, userID int64) (bool, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM turns
		WHERE user_id = ? AND role = ? AND is_question = 1 AND question_answered = 0
	`
	if err := r.db.GetContext(ctx, &count, query, userID, string(domain.RoleBot)); err != nil {
		return false, fmt.Errorf("count pending questions: %w", err)
	}
	return count > 0, nil
}

// MarkAllAnswered flags every unanswered bot question for the user as answered
func (r *TurnRepository) MarkAllAnswered(ctx context.Context, userID int64) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE turns
			SET question_answered = 1
			WHERE user_id = ? AND role = ? AND is_question = 1 AND question_answered = 0
		`
		_, err := r.db.ExecContext(ctx, query, userID, string(domain.RoleBot))
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("mark questions answered: %w", err)}
		}
		return nil
	})
}

// DeleteOlderThan removes turns created before the cutoff, returning the
// number of rows deleted
func (r *TurnRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM turns WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old turns: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete old turns rows: %w", err)
	}
	return rows, nil
}

// toDomainTurn converts SQL representation to domain model
func (r *TurnRepository) toDomainTurn(t *turnSQL) *domain.Turn {
	return &domain.Turn{
		ID:               t.ID,
		UserID:           t.UserID,
		Role:             domain.TurnRole(t.Role),
		Content:          t.Content,
		Kind:             domain.TurnKind(t.Kind),
		DetectedMood:     domain.Mood(t.DetectedMood),
		IsQuestion:       t.IsQuestion,
		QuestionTopic:    t.QuestionTopic,
		QuestionAnswered: t.QuestionAnswered,
		CreatedAt:        t.CreatedAt,
	}
}
