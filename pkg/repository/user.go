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

// UserRepository handles user-related database operations
type UserRepository struct {
	db *sqlx.DB
}

// userSQL represents a user for SQL operations
type userSQL struct {
	ID                  int64      `db:"id"`
	TelegramID          int64      `db:"telegram_id"`
	Name                string     `db:"name"`
	Archetype           string     `db:"archetype"`
	BotName             string     `db:"bot_name"`
	AttachmentStyle     string     `db:"attachment_style"`
	Tier                string     `db:"tier"`
	Timezone            string     `db:"timezone"`
	ProactiveEnabled    bool       `db:"proactive_enabled"`
	ProactiveCountToday int        `db:"proactive_count_today"`
	MessagesToday       int        `db:"messages_today"`
	LastDailyReset      string     `db:"last_daily_reset"`
	LastActiveAt        *time.Time `db:"last_active_at"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

// NewUserRepository creates a new user repository
func NewUserRepository(database *sqlx.DB) *UserRepository {
	return &UserRepository{db: database}
}

// Create inserts a new user and sets its ID
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	sqlUser := &userSQL{
		TelegramID:       user.TelegramID,
		Name:             user.Name,
		Archetype:        user.Archetype,
		BotName:          user.BotName,
		AttachmentStyle:  string(user.AttachmentStyle),
		Tier:             string(user.Tier),
		Timezone:         user.Timezone,
		ProactiveEnabled: user.ProactiveEnabled,
	}

	query := `
		INSERT INTO users (telegram_id, name, archetype, bot_name, attachment_style, tier, timezone, proactive_enabled)
		VALUES (:telegram_id, :name, :archetype, :bot_name, :attachment_style, :tier, :timezone, :proactive_enabled)
	`
	result, err := r.db.NamedExecContext(ctx, query, sqlUser)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	user.ID = id
	return nil
}

// Get retrieves a user by ID
func (r *UserRepository) Get(ctx context.Context, id int64) (*domain.User, error) {
	var sqlUser userSQL
	err := r.db.GetContext(ctx, &sqlUser, "SELECT * FROM users WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return r.toDomainUser(&sqlUser), nil
}

// GetByTelegram retrieves a user by telegram chat ID
func (r *UserRepository) GetByTelegram(ctx context.Context, telegramID int64) (*domain.User, error) {
	var sqlUser userSQL
	err := r.db.GetContext(ctx, &sqlUser, "SELECT * FROM users WHERE telegram_id = ?", telegramID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by telegram %d: %w", telegramID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by telegram %d: %w", telegramID, err)
	}
	return r.toDomainUser(&sqlUser), nil
}

// Update saves the user's profile and preference fields
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	sqlUser := &userSQL{
		ID:               user.ID,
		TelegramID:       user.TelegramID,
		Name:             user.Name,
		Archetype:        user.Archetype,
		BotName:          user.BotName,
		AttachmentStyle:  string(user.AttachmentStyle),
		Tier:             string(user.Tier),
		Timezone:         user.Timezone,
		ProactiveEnabled: user.ProactiveEnabled,
	}

	query := `
		UPDATE users
		SET telegram_id = :telegram_id,
		    name = :name,
		    archetype = :archetype,
		    bot_name = :bot_name,
		    attachment_style = :attachment_style,
		    tier = :tier,
		    timezone = :timezone,
		    proactive_enabled = :proactive_enabled,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, sqlUser)
	if err != nil {
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user %d rows: %w", user.ID, err)
	}
	if rows == 0 {
		return fmt.Errorf("update user %d: %w", user.ID, ErrNotFound)
	}
	return nil
}

// MarkActive stamps the last activity time and bumps the daily message counter
func (r *UserRepository) MarkActive(ctx context.Context, userID int64, ts time.Time) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE users
			SET last_active_at = ?,
			    messages_today = messages_today + 1,
			    updated_at = CURRENT_TIMESTAMP
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, ts, userID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("mark user %d active: %w", userID, err)}
		}
		return nil
	})
}

// IncrementProactive bumps the daily proactive counter
func (r *UserRepository) IncrementProactive(ctx context.Context, userID int64) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE users
			SET proactive_count_today = proactive_count_today + 1,
			    updated_at = CURRENT_TIMESTAMP
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, userID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("increment proactive for user %d: %w", userID, err)}
		}
		return nil
	})
}

// ActiveForProactive retrieves proactive-enabled users seen since the given
// time, the candidate set for one scheduler cycle
func (r *UserRepository) ActiveForProactive(ctx context.Context, activeSince time.Time, limit int) ([]*domain.User, error) {
	query := `
		SELECT * FROM users
		WHERE proactive_enabled = 1
		AND last_active_at IS NOT NULL
		AND last_active_at >= ?
		ORDER BY last_active_at DESC
		LIMIT ?
	`
	var sqlUsers []userSQL
	if err := r.db.SelectContext(ctx, &sqlUsers, query, activeSince, limit); err != nil {
		return nil, fmt.Errorf("get active users: %w", err)
	}

	users := make([]*domain.User, len(sqlUsers))
	for i, u := range sqlUsers {
		users[i] = r.toDomainUser(&u)
	}
	return users, nil
}

// Timezones returns the distinct timezones across all users
func (r *UserRepository) Timezones(ctx context.Context) ([]string, error) {
	var zones []string
	query := `SELECT DISTINCT COALESCE(NULLIF(timezone, ''), 'UTC') FROM users`
	if err := r.db.SelectContext(ctx, &zones, query); err != nil {
		return nil, fmt.Errorf("get timezones: %w", err)
	}
	return zones, nil
}

// ResetDaily zeroes the daily counters for every user in the timezone whose
// local date moved past the recorded reset date. localDate is YYYY-MM-DD.
// Returns the number of users reset.
func (r *UserRepository) ResetDaily(ctx context.Context, timezone, localDate string) (int64, error) {
	query := `
		UPDATE users
		SET proactive_count_today = 0,
		    messages_today = 0,
		    last_daily_reset = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE COALESCE(NULLIF(timezone, ''), 'UTC') = ?
		AND (last_daily_reset = '' OR last_daily_reset < ?)
	`
	result, err := r.db.ExecContext(ctx, query, localDate, timezone, localDate)
	if err != nil {
		return 0, fmt.Errorf("reset daily counters for %s: %w", timezone, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reset daily counters rows: %w", err)
	}
	return rows, nil
}

// toDomainUser converts SQL representation to domain model
func (r *UserRepository) toDomainUser(u *userSQL) *domain.User {
	return &domain.User{
		ID:                  u.ID,
		TelegramID:          u.TelegramID,
		Name:                u.Name,
		Archetype:           u.Archetype,
		BotName:             u.BotName,
		AttachmentStyle:     domain.AttachmentStyle(u.AttachmentStyle),
		Tier:                domain.Tier(u.Tier),
		Timezone:            u.Timezone,
		ProactiveEnabled:    u.ProactiveEnabled,
		ProactiveCountToday: u.ProactiveCountToday,
		MessagesToday:       u.MessagesToday,
		LastDailyReset:      u.LastDailyReset,
		LastActiveAt:        u.LastActiveAt,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}
