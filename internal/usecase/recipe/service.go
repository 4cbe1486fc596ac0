// Package recipe provides recipe catalog use cases on top of the
// repository layer.
package recipe

import (
	"context"
	"fmt"
	"strings"

	"recipe-catalog/internal/domain/entity"
	"recipe-catalog/internal/repository"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// CreateInput represents the input parameters for creating a new recipe.
type CreateInput struct {
	Label  string
	Source string
	URL    string
}

// UpdateInput represents the input parameters for updating a recipe.
// Nil fields are left unchanged.
type UpdateInput struct {
	ID     int64
	Label  *string
	Source *string
	URL    *string
}

// Service provides recipe management use cases. Persistence is delegated
// to the repository; ownership checks belong to the caller.
type Service struct {
	Repo repository.RecipeRepository
}

// Get retrieves a single recipe by its ID.
// Returns entity.ErrNotFound if the recipe does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Recipe, error) {
	if id <= 0 {
		return nil, fmt.Errorf("recipe id must be positive: %w", entity.ErrInvalidInput)
	}

	rec, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	if rec == nil {
		return nil, entity.ErrNotFound
	}
	return rec, nil
}

// List retrieves the most recent recipes, newest first.
// A non-positive limit falls back to the default page size.
func (s *Service) List(ctx context.Context, limit int) ([]*entity.Recipe, error) {
	limit = clampLimit(limit)

	recipes, err := s.Repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, nil
}

// Search retrieves recipes whose label matches the keyword.
// An empty keyword behaves like List.
func (s *Service) Search(ctx context.Context, keyword string, limit int) ([]*entity.Recipe, error) {
	limit = clampLimit(limit)

	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return s.List(ctx, limit)
	}

	recipes, err := s.Repo.Search(ctx, keyword, limit)
	if err != nil {
		return nil, fmt.Errorf("search recipes: %w", err)
	}
	return recipes, nil
}

// Create validates the input and stores a new recipe owned by submitterID.
func (s *Service) Create(ctx context.Context, submitterID int64, in CreateInput) (*entity.Recipe, error) {
	rec := &entity.Recipe{
		Label:       strings.TrimSpace(in.Label),
		Source:      strings.TrimSpace(in.Source),
		URL:         strings.TrimSpace(in.URL),
		SubmitterID: submitterID,
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return rec, nil
}

// Update applies the non-nil fields of in to an existing recipe.
// Returns entity.ErrNotFound if the recipe does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Recipe, error) {
	rec, err := s.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Label != nil {
		rec.Label = strings.TrimSpace(*in.Label)
	}
	if in.Source != nil {
		rec.Source = strings.TrimSpace(*in.Source)
	}
	if in.URL != nil {
		rec.URL = strings.TrimSpace(*in.URL)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	return rec, nil
}

// Delete removes a recipe by its ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
