package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-recipe-book/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user. user.Password must already hold the hash.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// RecipeRepository persists recipes. It performs no ownership checks.
type RecipeRepository interface {
	// ListRecipes returns every recipe ordered by creation time.
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	FindRecipeByID(ctx context.Context, recipeID string) (models.Recipe, error)
	CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	// UpdateRecipe overwrites the mutable columns of the stored recipe.
	// The owner, id, photo and creation time columns are never written.
	UpdateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	UpdateRecipePhoto(ctx context.Context, recipeID, photo string) error
	DeleteRecipe(ctx context.Context, recipeID string) error
}

// PhotoStorage stores uploaded recipe photos under a file name.
type PhotoStorage interface {
	SavePhoto(ctx context.Context, name string, content io.Reader, size int64, contentType string) error
}

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator maps driver specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
