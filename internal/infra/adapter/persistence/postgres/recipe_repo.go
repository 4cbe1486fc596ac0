package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"recipe-catalog/internal/domain/entity"
	"recipe-catalog/internal/observability/metrics"
	"recipe-catalog/internal/repository"
)

type RecipeRepo struct{ db *sql.DB }

func NewRecipeRepo(db *sql.DB) repository.RecipeRepository {
	return &RecipeRepo{db: db}
}

// scanRecipe is a helper function to scan a recipe row.
func scanRecipe(rows *sql.Rows) (*entity.Recipe, error) {
	var recipe entity.Recipe
	if err := rows.Scan(
		&recipe.ID, &recipe.Label, &recipe.Source, &recipe.URL,
		&recipe.SubmitterID, &recipe.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (repo *RecipeRepo) Get(ctx context.Context, id int64) (*entity.Recipe, error) {
	defer metrics.ObserveDBQuery("select_recipe", time.Now())
	const query = `
SELECT id, label, source, url, submitter_id, created_at
FROM recipes
WHERE id = $1
LIMIT 1`
	var recipe entity.Recipe
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&recipe.ID, &recipe.Label, &recipe.Source, &recipe.URL,
		&recipe.SubmitterID, &recipe.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &recipe, nil
}

func (repo *RecipeRepo) List(ctx context.Context, limit int) ([]*entity.Recipe, error) {
	defer metrics.ObserveDBQuery("select_recipes", time.Now())
	const query = `
SELECT id, label, source, url, submitter_id, created_at
FROM recipes
ORDER BY id ASC
LIMIT $1`
	rows, err := repo.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	recipes := make([]*entity.Recipe, 0, limit)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	return recipes, rows.Err()
}

func (repo *RecipeRepo) Search(ctx context.Context, keyword string, limit int) ([]*entity.Recipe, error) {
	defer metrics.ObserveDBQuery("search_recipes", time.Now())
	const query = `
SELECT id, label, source, url, submitter_id, created_at
FROM recipes
WHERE label ILIKE $1
ORDER BY id ASC
LIMIT $2`
	param := "%" + keyword + "%"
	rows, err := repo.db.QueryContext(ctx, query, param, limit)
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	recipes := make([]*entity.Recipe, 0, limit)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("Search: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	return recipes, rows.Err()
}

func (repo *RecipeRepo) Create(ctx context.Context, recipe *entity.Recipe) error {
	defer metrics.ObserveDBQuery("insert_recipe", time.Now())
	const query = `
INSERT INTO recipes (label, source, url, submitter_id)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		recipe.Label, recipe.Source, recipe.URL, recipe.SubmitterID,
	).Scan(&recipe.ID, &recipe.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *RecipeRepo) Update(ctx context.Context, recipe *entity.Recipe) error {
	defer metrics.ObserveDBQuery("update_recipe", time.Now())
	const query = `
UPDATE recipes SET
       label        = $1,
       source       = $2,
       url          = $3
WHERE id = $4`
	res, err := repo.db.ExecContext(ctx, query,
		recipe.Label, recipe.Source, recipe.URL, recipe.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

func (repo *RecipeRepo) Delete(ctx context.Context, id int64) error {
	defer metrics.ObserveDBQuery("delete_recipe", time.Now())
	const query = `DELETE FROM recipes WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}
