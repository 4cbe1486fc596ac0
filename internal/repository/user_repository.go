package repository

import (
	"context"

	"recipe-catalog/internal/domain/entity"
)

// UserRepository provides read and create access to user accounts.
// Lookups return (nil, nil) when no matching user exists.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}
