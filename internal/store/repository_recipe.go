package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/models"
	sq "github.com/Masterminds/squirrel"
)

// recipeRepository is the database/sql implementation of [RecipeRepository]
// over the "recipes" table. Queries are built with squirrel so the same code
// serves PostgreSQL and SQLite.
type recipeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRecipeRepository constructs a [RecipeRepository] backed by db.
func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (models.Recipe, error) {
	var recipe models.Recipe
	err := row.Scan(
		&recipe.ID,
		&recipe.Name,
		&recipe.Description,
		&recipe.Ingredients,
		&recipe.Instructions,
		&recipe.Duration,
		&recipe.Photo,
		&recipe.Public,
		&recipe.UserID,
		&recipe.CreatedAt,
	)
	return recipe, err
}

func (r *recipeRepository) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectRecipes().OrderBy("created_at", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.ListRecipes").Stringer("class", r.db.classify(err)).Msg("error querying recipes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			log.Err(err).Str("func", "*recipeRepository.ListRecipes").Msg("error scanning recipe")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*recipeRepository.ListRecipes").Msg("error iterating recipes")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recipes, nil
}

func (r *recipeRepository) FindRecipeByID(ctx context.Context, recipeID string) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectRecipes().Where(sq.Eq{"id": recipeID}).Limit(1).ToSql()
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	recipe, err := scanRecipe(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Recipe{}, ErrRecipeNotFound
	case err != nil:
		log.Err(err).Str("func", "*recipeRepository.FindRecipeByID").Stringer("class", r.db.classify(err)).Msg("error finding recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return recipe, nil
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(recipesTable).
		Columns(recipeColumns...).
		Values(
			recipe.ID,
			recipe.Name,
			recipe.Description,
			recipe.Ingredients,
			recipe.Instructions,
			recipe.Duration,
			recipe.Photo,
			recipe.Public,
			recipe.UserID,
			recipe.CreatedAt,
		).
		ToSql()
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*recipeRepository.CreateRecipe").Stringer("class", r.db.classify(err)).Msg("error inserting recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return recipe, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	query, args, err := r.db.builder.
		Update(recipesTable).
		SetMap(map[string]any{
			"name":         recipe.Name,
			"description":  recipe.Description,
			"ingredients":  recipe.Ingredients,
			"instructions": recipe.Instructions,
			"duration":     recipe.Duration,
			"public":       recipe.Public,
		}).
		Where(sq.Eq{"id": recipe.ID}).
		ToSql()
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.execAffectingOne(ctx, "*recipeRepository.UpdateRecipe", query, args); err != nil {
		return models.Recipe{}, err
	}

	return r.FindRecipeByID(ctx, recipe.ID)
}

func (r *recipeRepository) UpdateRecipePhoto(ctx context.Context, recipeID, photo string) error {
	query, args, err := r.db.builder.
		Update(recipesTable).
		Set("photo", photo).
		Where(sq.Eq{"id": recipeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*recipeRepository.UpdateRecipePhoto", query, args)
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, recipeID string) error {
	query, args, err := r.db.builder.
		Delete(recipesTable).
		Where(sq.Eq{"id": recipeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*recipeRepository.DeleteRecipe", query, args)
}

// execAffectingOne runs a statement that targets a single recipe and maps
// zero affected rows to [ErrRecipeNotFound].
func (r *recipeRepository) execAffectingOne(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Stringer("class", r.db.classify(err)).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecipeNotFound
	}

	return nil
}
