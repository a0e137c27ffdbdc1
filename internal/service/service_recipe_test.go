package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-recipe-book/internal/config"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/mock"
	"github.com/MKhiriev/go-recipe-book/internal/store"
	"github.com/MKhiriev/go-recipe-book/internal/validators"
	"github.com/MKhiriev/go-recipe-book/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testMaxUploadSize = 1_000

var (
	owner    = models.User{ID: "owner-1", Name: "Alice"}
	stranger = models.User{ID: "stranger-2", Name: "Bob"}

	pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
)

type recipeMocks struct {
	recipes *mock.MockRecipeRepository
	photos  *mock.MockPhotoStorage
	ids     *mock.MockIDGenerator
}

func newTestRecipeSvc(t *testing.T) (*recipeService, recipeMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := recipeMocks{
		recipes: mock.NewMockRecipeRepository(ctrl),
		photos:  mock.NewMockPhotoStorage(ctrl),
		ids:     mock.NewMockIDGenerator(ctrl),
	}

	svc := NewRecipeService(m.recipes, m.photos, config.Files{MaxUploadSize: testMaxUploadSize}, logger.Nop()).(*recipeService)
	svc.ids = m.ids
	svc.now = func() time.Time { return fixedNow }

	return svc, m
}

func storedRecipe() models.Recipe {
	return models.Recipe{
		ID:          "r-1",
		Name:        "Soup",
		Ingredients: models.Ingredients{{Name: "Water"}},
		Photo:       models.NoPhoto,
		Public:      true,
		UserID:      owner.ID,
		CreatedAt:   fixedNow.Add(-time.Hour),
	}
}

func ptr[T any](v T) *T { return &v }

// ── List / Get ───────────────────────────────────────────────────────────────

func TestRecipeService_ListRecipes_ProjectsSummaries(t *testing.T) {
	svc, m := newTestRecipeSvc(t)

	m.recipes.EXPECT().ListRecipes(gomock.Any()).Return([]models.Recipe{storedRecipe()}, nil)

	list, err := svc.ListRecipes(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.RecipeSummary{
		ID:          "r-1",
		Name:        "Soup",
		Ingredients: models.Ingredients{{Name: "Water"}},
		Photo:       models.NoPhoto,
	}, list[0])
}

func TestRecipeService_ListRecipes_Empty(t *testing.T) {
	svc, m := newTestRecipeSvc(t)

	m.recipes.EXPECT().ListRecipes(gomock.Any()).Return([]models.Recipe{}, nil)

	list, err := svc.ListRecipes(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestRecipeService_GetRecipe_NotFound(t *testing.T) {
	svc, m := newTestRecipeSvc(t)

	m.recipes.EXPECT().FindRecipeByID(gomock.Any(), "missing").Return(models.Recipe{}, store.ErrRecipeNotFound)

	_, err := svc.GetRecipe(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrRecipeNotFound)
	assert.Contains(t, err.Error(), "with id of missing")
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestRecipeService_CreateRecipe_StampsOwnerAndDefaults(t *testing.T) {
	svc, m := newTestRecipeSvc(t)

	m.ids.EXPECT().Generate().Return("r-new")
	m.recipes.EXPECT().CreateRecipe(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.Recipe) (models.Recipe, error) { return r, nil },
	)

	amount := 2.0
	created, err := svc.CreateRecipe(context.Background(), owner, models.RecipeInput{
		Name:        "Soup",
		Ingredients: models.Ingredients{{Name: "Water", Amount: &amount, Unit: "L"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "r-new", created.ID)
	assert.Equal(t, owner.ID, created.UserID)
	assert.Equal(t, models.NoPhoto, created.Photo)
	assert.True(t, created.Public)
	assert.Equal(t, fixedNow, created.CreatedAt)
}

func TestRecipeService_CreateRecipe_ExplicitPrivate(t *testing.T) {
	svc, m := newTestRecipeSvc(t)

	m.ids.EXPECT().Generate().Return("r-new")
	m.recipes.EXPECT().CreateRecipe(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.Recipe) (models.Recipe, error) { return r, nil },
	)

	created, err := svc.CreateRecipe(context.Background(), owner, models.RecipeInput{Name: "Secret", Public: ptr(false)})
	require.NoError(t, err)
	assert.False(t, created.Public)
	assert.NotNil(t, created.Ingredients)
}

func TestRecipeService_CreateRecipe_ValidationError(t *testing.T) {
	svc, m := newTestRecipeSvc(t)

	m.ids.EXPECT().Generate().Return("r-new")

	_, err := svc.CreateRecipe(context.Background(), owner, models.RecipeInput{Description: strings.Repeat("x", 101)})
	assert.ErrorIs(t, err, validators.ErrInvalidRecipe)
}

func TestRecipeService_CreateRecipe_NoCaller(t *testing.T) {
	svc, _ := newTestRecipeSvc(t)

	_, err := svc.CreateRecipe(context.Background(), models.User{}, models.RecipeInput{Name: "Soup"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestRecipeService_UpdateRecipe_AppliesOnlyPresentFields(t *testing.T) {
	svc, m := newTestRecipeSvc(t)
	existing := storedRecipe()

	m.recipes.EXPECT().FindRecipeByID(gomock.Any(), "r-1").Return(existing, nil)
	m.recipes.EXPECT().UpdateRecipe(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.Recipe) (models.Recipe, error) {
			assert.Equal(t, "Tomato soup", r.Name)
			assert.Equal(t, existing.Ingredients, r.Ingredients)
			assert.Equal(t, owner.ID, r.UserID)
			assert.Equal(t, existing.CreatedAt, r.CreatedAt)
			assert.Equal(t, existing.Photo, r.Photo)
			return r, nil
		},
	)

	updated, err := svc.UpdateRecipe(context.Background(), owner, "r-1", models.RecipeUpdate{Name: ptr("Tomato soup")})
	require.NoError(t, err)
	assert.Equal(t, "Tomato soup", updated.Name)
}

func TestRecipeService_UpdateRecipe_NotFoundBeforeOwnership(t *testing.T) {
	svc, m := newTestRecipeSvc(t)

	m.recipes.EXPECT().FindRecipeByID(gomock.Any(), "missing").Return(models.Recipe{}, store.ErrRecipeNotFound)

	_, err := svc.UpdateRecipe(context.Background(), stranger, "missing", models.RecipeUpdate{})
	assert.ErrorIs(t, err, store.ErrRecipeNotFound)
	assert.False(t, errors.Is(err, ErrNotRecipeOwner))
}

func TestRecipeService_UpdateRecipe_NonOwnerNeverWrites(t *testing.T) {
	svc, m := newTestRecipeSvc(t)

	m.recipes.EXPECT().FindRecipeByID(gomock.Any(), "r-1").Return(storedRecipe(), nil)
	// no UpdateRecipe expectation: a call would fail the test

	_, err := svc.UpdateRecipe(context.Background(), stranger, "r-1", models.RecipeUpdate{Name: ptr("Hijacked")})
	assert.ErrorIs(t, err, ErrNotRecipeOwner)
	assert.Contains(t, err.Error(), "stranger-2")
}

func TestRecipeService_UpdateRecipe_InvalidResult(t *testing.T) {
	svc, m := newTestRecipeSvc(t)

	m.recipes.EXPECT().FindRecipeByID(gomock.Any(), "r-1").Return(storedRecipe(), nil)

	_, err := svc.UpdateRecipe(context.Background(), owner, "r-1", models.RecipeUpdate{Name: ptr("")})
	assert.ErrorIs(t, err, validators.ErrInvalidRecipe)
}

func TestRecipeService_UpdateRecipe_Idempotent(t *testing.T) {
	svc, m := newTestRecipeSvc(t)
	update := models.RecipeUpdate{Duration: ptr(15), Public: ptr(false)}

	var saved []models.Recipe
	m.recipes.EXPECT().FindRecipeByID(gomock.Any(), "r-1").Return(storedRecipe(), nil).Times(2)
	m.recipes.EXPECT().UpdateRecipe(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.Recipe) (models.Recipe, error) {
			saved = append(saved, r)
			return r, nil
		},
	).Times(2)

	for range 2 {
		_, err := svc.UpdateRecipe(context.Background(), owner, "r-1", update)
		require.NoError(t, err)
	}
	assert.Equal(t, saved[0], saved[1])
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestRecipeService_DeleteRecipe(t *testing.T) {
	svc, m := newTestRecipeSvc(t)

	m.recipes.EXPECT().FindRecipeByID(gomock.Any(), "r-1").Return(storedRecipe(), nil)
	m.recipes.EXPECT().DeleteRecipe(gomock.Any(), "r-1").Return(nil)

	require.NoError(t, svc.DeleteRecipe(context.Background(), owner, "r-1"))
}

func TestRecipeService_DeleteRecipe_NonOwner(t *testing.T) {
	svc, m := newTestRecipeSvc(t)

	m.recipes.EXPECT().FindRecipeByID(gomock.Any(), "r-1").Return(storedRecipe(), nil)

	err := svc.DeleteRecipe(context.Background(), stranger, "r-1")
	assert.ErrorIs(t, err, ErrNotRecipeOwner)
}

func TestRecipeService_DeleteRecipe_VanishedBetweenCalls(t *testing.T) {
	svc, m := newTestRecipeSvc(t)

	m.recipes.EXPECT().FindRecipeByID(gomock.Any(), "r-1").Return(storedRecipe(), nil)
	m.recipes.EXPECT().DeleteRecipe(gomock.Any(), "r-1").Return(store.ErrRecipeNotFound)

	err := svc.DeleteRecipe(context.Background(), owner, "r-1")
	assert.ErrorIs(t, err, store.ErrRecipeNotFound)
}

// ── UploadPhoto ──────────────────────────────────────────────────────────────

func pngUpload(filename string, size int64) *models.PhotoUpload {
	return &models.PhotoUpload{
		Filename:    filename,
		ContentType: "image/png",
		Size:        size,
		Content:     bytes.NewReader(pngHeader),
	}
}

func TestRecipeService_UploadPhoto_Success(t *testing.T) {
	svc, m := newTestRecipeSvc(t)

	m.recipes.EXPECT().FindRecipeByID(gomock.Any(), "r-1").Return(storedRecipe(), nil)
	gomock.InOrder(
		m.photos.EXPECT().SavePhoto(gomock.Any(), "photo_r-1.png", gomock.Any(), int64(len(pngHeader)), "image/png").Return(nil),
		m.recipes.EXPECT().UpdateRecipePhoto(gomock.Any(), "r-1", "photo_r-1.png").Return(nil),
	)

	name, err := svc.UploadPhoto(context.Background(), owner, "r-1", pngUpload("dinner.png", int64(len(pngHeader))))
	require.NoError(t, err)
	assert.Equal(t, "photo_r-1.png", name)
}

func TestRecipeService_UploadPhoto_SniffsOctetStream(t *testing.T) {
	svc, m := newTestRecipeSvc(t)

	upload := pngUpload("camera-upload", int64(len(pngHeader)))
	upload.ContentType = "application/octet-stream"

	m.recipes.EXPECT().FindRecipeByID(gomock.Any(), "r-1").Return(storedRecipe(), nil)
	m.photos.EXPECT().SavePhoto(gomock.Any(), "photo_r-1.png", gomock.Any(), gomock.Any(), "image/png").DoAndReturn(
		func(_ context.Context, _ string, content io.Reader, _ int64, _ string) error {
			b, err := io.ReadAll(content)
			require.NoError(t, err)
			assert.Equal(t, pngHeader, b, "content must be rewound after sniffing")
			return nil
		},
	)
	m.recipes.EXPECT().UpdateRecipePhoto(gomock.Any(), "r-1", "photo_r-1.png").Return(nil)

	name, err := svc.UploadPhoto(context.Background(), owner, "r-1", upload)
	require.NoError(t, err)
	assert.Equal(t, "photo_r-1.png", name)
}

func TestRecipeService_UploadPhoto_Rejections(t *testing.T) {
	textUpload := &models.PhotoUpload{
		Filename:    "notes.txt",
		ContentType: "text/plain",
		Size:        5,
		Content:     strings.NewReader("hello"),
	}

	tests := []struct {
		name    string
		caller  models.User
		upload  *models.PhotoUpload
		wantErr error
	}{
		{"non-owner", stranger, pngUpload("a.png", 10), ErrNotRecipeOwner},
		{"no file", owner, nil, ErrNoFileUploaded},
		{"not an image", owner, textUpload, ErrNotAnImage},
		{"too large", owner, pngUpload("a.png", testMaxUploadSize+1), ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestRecipeSvc(t)
			m.recipes.EXPECT().FindRecipeByID(gomock.Any(), "r-1").Return(storedRecipe(), nil)
			// neither SavePhoto nor UpdateRecipePhoto may be called

			_, err := svc.UploadPhoto(context.Background(), tt.caller, "r-1", tt.upload)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecipeService_UploadPhoto_TooLargeMessage(t *testing.T) {
	svc, m := newTestRecipeSvc(t)
	m.recipes.EXPECT().FindRecipeByID(gomock.Any(), "r-1").Return(storedRecipe(), nil)

	_, err := svc.UploadPhoto(context.Background(), owner, "r-1", pngUpload("a.png", testMaxUploadSize+1))
	assert.EqualError(t, err, "please upload an image less than 1000 bytes")
}

func TestRecipeService_UploadPhoto_UnreadableBodyReportedAfterChecks(t *testing.T) {
	tooLarge := &models.PhotoUpload{Err: fmt.Errorf("%w %d bytes", ErrFileTooLarge, testMaxUploadSize)}
	malformed := &models.PhotoUpload{Err: ErrInvalidDataProvided}

	tests := []struct {
		name    string
		caller  models.User
		found   bool
		upload  *models.PhotoUpload
		wantErr error
	}{
		{"missing recipe, oversized body", owner, false, tooLarge, store.ErrRecipeNotFound},
		{"non-owner, oversized body", stranger, true, tooLarge, ErrNotRecipeOwner},
		{"non-owner, malformed body", stranger, true, malformed, ErrNotRecipeOwner},
		{"owner, oversized body", owner, true, tooLarge, ErrFileTooLarge},
		{"owner, malformed body", owner, true, malformed, ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestRecipeSvc(t)
			if tt.found {
				m.recipes.EXPECT().FindRecipeByID(gomock.Any(), "r-1").Return(storedRecipe(), nil)
			} else {
				m.recipes.EXPECT().FindRecipeByID(gomock.Any(), "r-1").Return(models.Recipe{}, store.ErrRecipeNotFound)
			}

			_, err := svc.UploadPhoto(context.Background(), tt.caller, "r-1", tt.upload)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecipeService_UploadPhoto_StorageFailure(t *testing.T) {
	svc, m := newTestRecipeSvc(t)

	m.recipes.EXPECT().FindRecipeByID(gomock.Any(), "r-1").Return(storedRecipe(), nil)
	m.photos.EXPECT().SavePhoto(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(store.ErrPhotoNotSaved)

	_, err := svc.UploadPhoto(context.Background(), owner, "r-1", pngUpload("a.png", 10))
	assert.ErrorIs(t, err, ErrPhotoUploadFailed)
}

func TestPhotoFileName(t *testing.T) {
	assert.Equal(t, "photo_r-1.jpeg", photoFileName("r-1", "dir/holiday.jpeg", "image/jpeg"))
	assert.Equal(t, "photo_r-1.png", photoFileName("r-1", "", "image/png"))
	assert.Equal(t, "photo_r-1", photoFileName("r-1", "", "image/x-unknown"))
}

func TestEnsureOwner(t *testing.T) {
	recipe := storedRecipe()

	assert.NoError(t, ensureOwner(recipe, owner, "update"))
	assert.ErrorIs(t, ensureOwner(recipe, stranger, "update"), ErrNotRecipeOwner)
	assert.ErrorIs(t, ensureOwner(recipe, models.User{}, "update"), ErrNotRecipeOwner)
}
