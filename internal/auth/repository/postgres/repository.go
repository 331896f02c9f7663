package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dwiprasetyo/auth-session-service/internal/auth/domain"
)

// PgxIface is the slice of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, email, password_hash, login_attempt, enable, reset_token, reset_token_expires_at, created_at, updated_at`

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	user, err := r.scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
		LIMIT 1;
	`
	user, err := r.scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.LoginAttempt,
		&user.Enable, &user.ResetToken, &user.ResetTokenExpiresAt,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, email, password_hash, login_attempt, enable, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	var createdID string
	err := r.db.QueryRow(ctx, query, user.ID, user.Email, user.PasswordHash,
		user.LoginAttempt, user.Enable, user.CreatedAt, user.UpdatedAt).Scan(&createdID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	created := *user
	created.ID = createdID
	return &created, nil
}

// IncrementLoginAttempt bumps the counter and recomputes the enable flag
// in one statement, so concurrent failed logins cannot lose updates.
func (r *PostgresRepository) IncrementLoginAttempt(ctx context.Context, id string, maxAttempts int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET login_attempt = login_attempt + 1,
		    enable = login_attempt + 1 < $2,
		    updated_at = now()
		WHERE id = $1
	`, id, maxAttempts)
	return err
}

func (r *PostgresRepository) ResetLoginAttempt(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET login_attempt = 0, enable = TRUE, updated_at = now()
		WHERE id = $1
	`, id)
	return err
}

func (r *PostgresRepository) SetResetToken(ctx context.Context, id, token string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET reset_token = $2, reset_token_expires_at = $3, updated_at = now()
		WHERE id = $1
	`, id, token, expiresAt)
	return err
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET password_hash = $2, updated_at = now()
		WHERE id = $1
	`, id, passwordHash)
	return err
}

func (r *PostgresRepository) Store(ctx context.Context, rt *domain.RefreshToken) error {
	query := `INSERT INTO refresh_tokens (id, user_id, token, device_fingerprint, ip_address, user_agent, expires_at, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		rt.ID, rt.UserID, rt.Token, rt.DeviceFingerprint, rt.IPAddress,
		rt.UserAgent, rt.ExpiresAt, rt.CreatedAt)
	return err
}

func (r *PostgresRepository) GetByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	query := `
		SELECT id, user_id, token, device_fingerprint, ip_address, user_agent, expires_at, created_at
		FROM refresh_tokens
		WHERE token = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, token)

	var rt domain.RefreshToken
	err := row.Scan(&rt.ID, &rt.UserID, &rt.Token, &rt.DeviceFingerprint,
		&rt.IPAddress, &rt.UserAgent, &rt.ExpiresAt, &rt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return &rt, nil
}
