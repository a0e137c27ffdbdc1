package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// NoPhoto is the photo reference of a recipe that has no uploaded photo yet.
const NoPhoto = "no-photo.jpg"

// Ingredient is a single line of a recipe's ingredient list.
type Ingredient struct {
	Name   string   `json:"name" validate:"required"`
	Amount *float64 `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Unit   string   `json:"unit,omitempty"`
}

// Ingredients is the ordered ingredient list of a recipe.
// It is persisted as a single JSON column.
type Ingredients []Ingredient

// Value implements the driver.Valuer interface.
func (i Ingredients) Value() (driver.Value, error) {
	if len(i) == 0 {
		return "[]", nil
	}

	b, err := json.Marshal(i)
	if err != nil {
		return nil, err
	}

	return string(b), nil
}

// Scan implements the sql.Scanner interface.
func (i *Ingredients) Scan(value any) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*i = Ingredients{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for ingredients column")
	}

	return json.Unmarshal(raw, i)
}

// Recipe is a user-owned recipe record.
//
// UserID is the owner. It is stamped from the authenticated identity at
// creation and never changes afterwards.
type Recipe struct {
	ID           string      `json:"id"`
	Name         string      `json:"name" validate:"required"`
	Description  string      `json:"description" validate:"max=100"`
	Ingredients  Ingredients `json:"ingredients" validate:"dive"`
	Instructions string      `json:"instructions"`
	// Duration is the preparation time in minutes.
	Duration  int       `json:"duration" validate:"gte=0"`
	Photo     string    `json:"photo"`
	Public    bool      `json:"public"`
	UserID    string    `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Recipe model.
func (r Recipe) TableName() string {
	return "recipes"
}

// Summary projects the recipe onto the fields exposed by the listing.
func (r Recipe) Summary() RecipeSummary {
	return RecipeSummary{
		ID:           r.ID,
		Name:         r.Name,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Photo:        r.Photo,
	}
}

// RecipeSummary is the listing projection of a [Recipe].
// It carries no owner and no creation time.
type RecipeSummary struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Ingredients  Ingredients `json:"ingredients"`
	Instructions string      `json:"instructions"`
	Photo        string      `json:"photo"`
}

// RecipeInput is the request body for creating a recipe.
//
// It has no owner, id, photo or creation time fields: any such keys
// sent by the client are dropped while decoding.
type RecipeInput struct {
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Ingredients  Ingredients `json:"ingredients"`
	Instructions string      `json:"instructions"`
	Duration     int         `json:"duration"`
	Public       *bool       `json:"public"`
}

// RecipeUpdate is the request body for a partial recipe update.
// Only non-nil fields are applied.
type RecipeUpdate struct {
	Name         *string      `json:"name,omitempty"`
	Description  *string      `json:"description,omitempty"`
	Ingredients  *Ingredients `json:"ingredients,omitempty"`
	Instructions *string      `json:"instructions,omitempty"`
	Duration     *int         `json:"duration,omitempty"`
	Public       *bool        `json:"public,omitempty"`
}

// Apply returns a copy of recipe with every non-nil field of u applied.
func (u RecipeUpdate) Apply(recipe Recipe) Recipe {
	if u.Name != nil {
		recipe.Name = *u.Name
	}
	if u.Description != nil {
		recipe.Description = *u.Description
	}
	if u.Ingredients != nil {
		recipe.Ingredients = *u.Ingredients
	}
	if u.Instructions != nil {
		recipe.Instructions = *u.Instructions
	}
	if u.Duration != nil {
		recipe.Duration = *u.Duration
	}
	if u.Public != nil {
		recipe.Public = *u.Public
	}

	return recipe
}
