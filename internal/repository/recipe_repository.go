package repository

import (
	"context"

	"recipe-catalog/internal/domain/entity"
)

type RecipeRepository interface {
	Get(ctx context.Context, id int64) (*entity.Recipe, error)
	List(ctx context.Context, limit int) ([]*entity.Recipe, error)
	Search(ctx context.Context, keyword string, limit int) ([]*entity.Recipe, error)
	Create(ctx context.Context, recipe *entity.Recipe) error
	Update(ctx context.Context, recipe *entity.Recipe) error
	Delete(ctx context.Context, id int64) error
}
