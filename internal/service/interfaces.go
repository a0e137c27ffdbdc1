package service

import (
	"context"

	"github.com/MKhiriev/go-recipe-book/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers and logs in users and resolves bearer tokens to
// the user they were issued for.
type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error)
	// Authenticate fails with ErrUnauthorized for any invalid token.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// RecipeService implements the recipe operations. Mutating operations take
// the authenticated caller and check ownership before writing.
type RecipeService interface {
	ListRecipes(ctx context.Context) ([]models.RecipeSummary, error)
	GetRecipe(ctx context.Context, recipeID string) (models.Recipe, error)
	CreateRecipe(ctx context.Context, caller models.User, input models.RecipeInput) (models.Recipe, error)
	UpdateRecipe(ctx context.Context, caller models.User, recipeID string, update models.RecipeUpdate) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, caller models.User, recipeID string) error
	// UploadPhoto stores the photo and returns its file name.
	UploadPhoto(ctx context.Context, caller models.User, recipeID string, upload *models.PhotoUpload) (string, error)
}

type HealthService interface {
	Check(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.BuildInfo
}

// IDGenerator issues identifiers for new records.
type IDGenerator interface {
	Generate() string
}
