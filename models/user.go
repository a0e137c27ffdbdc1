package models

import "time"

// User represents an account that can own recipes.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUIDv7 string).
	// It is the subject of every issued token and the owner reference
	// stored on recipes.
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name" validate:"required,max=100"`

	// Email is the unique login of the user.
	Email string `json:"email" validate:"required,email"`

	// Password holds the plain-text password on the way in (register/login)
	// and the bcrypt hash once loaded from storage. Never serialized.
	Password string `json:"-" validate:"required,min=6"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the request body of the register and login endpoints.
// Password is accepted from JSON here, unlike [User].
type Credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToUser converts credentials into a [User] ready for validation.
func (c Credentials) ToUser() User {
	return User{
		Name:     c.Name,
		Email:    c.Email,
		Password: c.Password,
	}
}
