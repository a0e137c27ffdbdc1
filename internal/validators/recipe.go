package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-book/models"
)

// Field name constants used to restrict recipe validation to a subset of
// fields.
const (
	FieldName         = "name"
	FieldDescription  = "description"
	FieldIngredients  = "ingredients"
	FieldInstructions = "instructions"
	FieldDuration     = "duration"
	FieldOwner        = "user"
)

var recipeFields = map[string]string{
	FieldName:         "Name",
	FieldDescription:  "Description",
	FieldIngredients:  "Ingredients",
	FieldInstructions: "Instructions",
	FieldDuration:     "Duration",
	FieldOwner:        "UserID",
}

// RecipeValidator implements the Validator interface for [models.Recipe].
//
// Without field names every rule is checked: a name is required, the
// description is at most 100 characters, every ingredient has a name and a
// non-negative amount, the duration is non-negative and the recipe has an
// owner.
type RecipeValidator struct {
	structs *structValidator
}

func NewRecipeValidator() Validator {
	return &RecipeValidator{structs: newStructValidator()}
}

func (v *RecipeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Recipe:
		return v.validateRecipe(ctx, value, fields...)
	case *models.Recipe:
		return v.validateRecipe(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RecipeValidator) validateRecipe(ctx context.Context, recipe models.Recipe, fields ...string) error {
	checkOwner := len(fields) == 0
	names, err := structFieldNames(recipeFields, fields)
	if err != nil {
		return err
	}
	for _, f := range fields {
		if f == FieldOwner {
			checkOwner = true
		}
	}

	if err := v.structs.check(ctx, ErrInvalidRecipe, recipe, names...); err != nil {
		return err
	}

	if checkOwner && recipe.UserID == "" {
		return fmt.Errorf("%w: user is required", ErrInvalidRecipe)
	}

	return nil
}
