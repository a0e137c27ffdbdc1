package store

import sq "github.com/Masterminds/squirrel"

const (
	usersTable   = "users"
	recipesTable = "recipes"
)

var (
	userColumns = []string{"id", "name", "email", "password_hash", "created_at"}

	recipeColumns = []string{
		"id",
		"name",
		"description",
		"ingredients",
		"instructions",
		"duration",
		"photo",
		"public",
		"user_id",
		"created_at",
	}
)

func (db *DB) selectUsers() sq.SelectBuilder {
	return db.builder.Select(userColumns...).From(usersTable)
}

func (db *DB) selectRecipes() sq.SelectBuilder {
	return db.builder.Select(recipeColumns...).From(recipesTable)
}
