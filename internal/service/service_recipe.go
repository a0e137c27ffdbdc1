// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-recipe-book/internal/config"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/store"
	"github.com/MKhiriev/go-recipe-book/internal/utils"
	"github.com/MKhiriev/go-recipe-book/internal/validators"
	"github.com/MKhiriev/go-recipe-book/models"
	"github.com/gabriel-vasile/mimetype"
)

const (
	photoNamePrefix      = "photo_"
	octetStreamMediaType = "application/octet-stream"
	imageMediaTypePrefix = "image/"
)

// recipeService is the concrete implementation of RecipeService.
//
// Reads are public. Every mutating operation loads the recipe first, so a
// missing id is reported before ownership, and then checks that the caller
// owns it before anything is written.
type recipeService struct {
	recipeRepository store.RecipeRepository
	photoStorage     store.PhotoStorage
	validator        validators.Validator
	ids              IDGenerator

	// maxUploadSize is the largest accepted photo in bytes.
	maxUploadSize int64

	now    func() time.Time
	logger *logger.Logger
}

func NewRecipeService(recipeRepository store.RecipeRepository, photoStorage store.PhotoStorage, cfg config.Files, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		photoStorage:     photoStorage,
		validator:        validators.NewRecipeValidator(),
		ids:              utils.NewUUIDGenerator(),
		maxUploadSize:    cfg.MaxUploadSize,
		now:              time.Now,
		logger:           logger,
	}
}

func (s *recipeService) ListRecipes(ctx context.Context) ([]models.RecipeSummary, error) {
	recipes, err := s.recipeRepository.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing recipes: %w", err)
	}

	summaries := make([]models.RecipeSummary, 0, len(recipes))
	for _, recipe := range recipes {
		summaries = append(summaries, recipe.Summary())
	}

	return summaries, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, recipeID string) (models.Recipe, error) {
	return s.findRecipe(ctx, recipeID)
}

// CreateRecipe stores a new recipe owned by caller. The server assigns the
// id, creation time and default photo; public defaults to true.
func (s *recipeService) CreateRecipe(ctx context.Context, caller models.User, input models.RecipeInput) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	if caller.ID == "" {
		return models.Recipe{}, ErrUnauthorized
	}

	recipe := models.Recipe{
		ID:           s.ids.Generate(),
		Name:         input.Name,
		Description:  input.Description,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		Duration:     input.Duration,
		Photo:        models.NoPhoto,
		Public:       true,
		UserID:       caller.ID,
		CreatedAt:    s.now().UTC(),
	}
	if recipe.Ingredients == nil {
		recipe.Ingredients = models.Ingredients{}
	}
	if input.Public != nil {
		recipe.Public = *input.Public
	}

	if err := s.validator.Validate(ctx, recipe); err != nil {
		log.Debug().Err(err).Str("user_id", caller.ID).Msg("invalid recipe")
		return models.Recipe{}, err
	}

	created, err := s.recipeRepository.CreateRecipe(ctx, recipe)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("error creating recipe: %w", err)
	}

	log.Info().Str("recipe_id", created.ID).Str("user_id", caller.ID).Msg("recipe created")
	return created, nil
}

// UpdateRecipe applies the fields present in update. The owner, id, photo
// and creation time are kept from the stored recipe.
func (s *recipeService) UpdateRecipe(ctx context.Context, caller models.User, recipeID string, update models.RecipeUpdate) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	recipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return models.Recipe{}, err
	}
	if err = ensureOwner(recipe, caller, "update"); err != nil {
		log.Warn().Str("recipe_id", recipeID).Str("user_id", caller.ID).Msg("update by non-owner rejected")
		return models.Recipe{}, err
	}

	updated := update.Apply(recipe)
	if updated.Ingredients == nil {
		updated.Ingredients = models.Ingredients{}
	}
	if err = s.validator.Validate(ctx, updated); err != nil {
		return models.Recipe{}, err
	}

	saved, err := s.recipeRepository.UpdateRecipe(ctx, updated)
	if err != nil {
		return models.Recipe{}, s.notFoundOr(recipeID, err, "error updating recipe")
	}

	return saved, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, caller models.User, recipeID string) error {
	log := logger.FromContext(ctx)

	recipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return err
	}
	if err = ensureOwner(recipe, caller, "delete"); err != nil {
		log.Warn().Str("recipe_id", recipeID).Str("user_id", caller.ID).Msg("delete by non-owner rejected")
		return err
	}

	if err = s.recipeRepository.DeleteRecipe(ctx, recipeID); err != nil {
		return s.notFoundOr(recipeID, err, "error deleting recipe")
	}

	log.Info().Str("recipe_id", recipeID).Str("user_id", caller.ID).Msg("recipe deleted")
	return nil
}

// UploadPhoto checks the upload, stores it as photo_<recipeID><ext> and
// points the recipe at it. The stored reference is left untouched when any
// check or the storage call fails.
func (s *recipeService) UploadPhoto(ctx context.Context, caller models.User, recipeID string, upload *models.PhotoUpload) (string, error) {
	log := logger.FromContext(ctx)

	recipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return "", err
	}
	if err = ensureOwner(recipe, caller, "upload photo for"); err != nil {
		log.Warn().Str("recipe_id", recipeID).Str("user_id", caller.ID).Msg("photo upload by non-owner rejected")
		return "", err
	}

	if upload != nil && upload.Err != nil {
		return "", upload.Err
	}
	if upload == nil || upload.Content == nil {
		return "", ErrNoFileUploaded
	}

	contentType, err := detectContentType(upload)
	if err != nil {
		log.Err(err).Str("func", "*recipeService.UploadPhoto").Msg("error reading upload")
		return "", fmt.Errorf("%w: %w", ErrPhotoUploadFailed, err)
	}
	if !strings.HasPrefix(contentType, imageMediaTypePrefix) {
		return "", ErrNotAnImage
	}

	if upload.Size > s.maxUploadSize {
		return "", fmt.Errorf("%w %d bytes", ErrFileTooLarge, s.maxUploadSize)
	}

	name := photoFileName(recipe.ID, upload.Filename, contentType)
	if err = s.photoStorage.SavePhoto(ctx, name, upload.Content, upload.Size, contentType); err != nil {
		log.Err(err).Str("recipe_id", recipeID).Str("photo", name).Msg("error storing photo")
		return "", fmt.Errorf("%w: %w", ErrPhotoUploadFailed, err)
	}

	if err = s.recipeRepository.UpdateRecipePhoto(ctx, recipe.ID, name); err != nil {
		return "", s.notFoundOr(recipeID, err, "error saving photo reference")
	}

	log.Info().Str("recipe_id", recipeID).Str("photo", name).Msg("recipe photo uploaded")
	return name, nil
}

func (s *recipeService) findRecipe(ctx context.Context, recipeID string) (models.Recipe, error) {
	recipe, err := s.recipeRepository.FindRecipeByID(ctx, recipeID)
	if err != nil {
		return models.Recipe{}, s.notFoundOr(recipeID, err, "error loading recipe")
	}
	return recipe, nil
}

// notFoundOr names the id in not-found errors and wraps anything else with msg.
func (s *recipeService) notFoundOr(recipeID string, err error, msg string) error {
	if errors.Is(err, store.ErrRecipeNotFound) {
		return fmt.Errorf("%w with id of %s", store.ErrRecipeNotFound, recipeID)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// ensureOwner fails with ErrNotRecipeOwner unless caller owns recipe.
func ensureOwner(recipe models.Recipe, caller models.User, action string) error {
	if caller.ID == "" || recipe.UserID != caller.ID {
		return fmt.Errorf("%w: user %s is not authorized to %s this recipe", ErrNotRecipeOwner, caller.ID, action)
	}
	return nil
}

// detectContentType returns the declared type of the upload, or the sniffed
// type when none or a generic one was declared. The content is rewound.
func detectContentType(upload *models.PhotoUpload) (string, error) {
	declared := strings.ToLower(strings.TrimSpace(upload.ContentType))
	if declared != "" && !strings.HasPrefix(declared, octetStreamMediaType) {
		return declared, nil
	}

	mtype, err := mimetype.DetectReader(upload.Content)
	if err != nil {
		return "", err
	}
	if _, err = upload.Content.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return mtype.String(), nil
}

// photoFileName keeps the extension of the client file name, falling back to
// the one registered for contentType.
func photoFileName(recipeID, original, contentType string) string {
	ext := filepath.Ext(filepath.Base(original))
	if ext == "" {
		if m := mimetype.Lookup(strings.TrimSpace(strings.Split(contentType, ";")[0])); m != nil {
			ext = m.Extension()
		}
	}
	return photoNamePrefix + recipeID + ext
}
