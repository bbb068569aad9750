package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sharafhazem/portfolio-ops/internal/domain/user"
	"github.com/sharafhazem/portfolio-ops/pkg/apperror"
	"github.com/sharafhazem/portfolio-ops/pkg/logger"
)

type postgresUserRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresUserRepo(db *pgxpool.Pool, logger logger.Logger) user.Repository {
	return &postgresUserRepo{db: db, logger: logger}
}

func (r *postgresUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `SELECT id, username, password_hash, role FROM users WHERE username = $1`

	u := &user.User{}
	err := r.db.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("user", username)
		}
		return nil, apperror.NewInternal("failed to query user", err)
	}
	return u, nil
}

func (r *postgresUserRepo) Save(ctx context.Context, u *user.User) error {
	query := `INSERT INTO users (id, username, password_hash, role) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, u.ID, u.Username, u.PasswordHash, u.Role)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewConflict("user", "username", u.Username)
		}
		return apperror.NewInternal("failed to save user", err)
	}
	return nil
}
