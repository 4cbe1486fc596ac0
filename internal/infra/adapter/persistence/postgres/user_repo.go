package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"recipe-catalog/internal/domain/entity"
	"recipe-catalog/internal/observability/metrics"
	"recipe-catalog/internal/repository"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

type UserRepo struct{ db *sql.DB }

func NewUserRepo(db *sql.DB) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	defer metrics.ObserveDBQuery("select_user_by_id", time.Now())
	const query = `
SELECT id, first_name, surname, email, hashed_password, is_superuser
FROM users
WHERE id = $1
LIMIT 1`
	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.FirstName, &user.Surname,
		&user.Email, &user.HashedPassword, &user.IsSuperuser,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("FindByID: %w", err)
	}
	return &user, nil
}

func (repo *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	defer metrics.ObserveDBQuery("select_user_by_email", time.Now())
	const query = `
SELECT id, first_name, surname, email, hashed_password, is_superuser
FROM users
WHERE email = $1
LIMIT 1`
	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.FirstName, &user.Surname,
		&user.Email, &user.HashedPassword, &user.IsSuperuser,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("FindByEmail: %w", err)
	}
	return &user, nil
}

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	defer metrics.ObserveDBQuery("insert_user", time.Now())
	const query = `
INSERT INTO users (first_name, surname, email, hashed_password, is_superuser)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		user.FirstName, user.Surname, user.Email,
		user.HashedPassword, user.IsSuperuser,
	).Scan(&user.ID)
	if err != nil {
		// unique_violation on users.email maps to the domain duplicate error
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return entity.ErrDuplicateUser
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}
