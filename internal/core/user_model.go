package core

import (
	"context"
	"time"
)

// User is an authenticated system user. Role gates which screens the user
// may mutate; see the web adapter's RequireRole middleware.
type User struct {
	ID           int
	Username     string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
}

// UserInput holds the fields required to create a user.
type UserInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// UserService provides user management and credential checks.
type UserService interface {
	// CreateUser creates a user with a bcrypt password hash.
	CreateUser(ctx context.Context, input UserInput) (*User, error)

	// Authenticate checks a username/password pair and returns the user.
	// Returns ErrNotFound for unknown users and bad passwords alike.
	Authenticate(ctx context.Context, username, password string) (*User, error)

	// GetByUsername finds an active user by username.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetByID returns a user by primary key.
	GetByID(ctx context.Context, userID int) (*User, error)

	// ListUsers returns all users, active and inactive.
	ListUsers(ctx context.Context) ([]User, error)

	// DeactivateUser disables a user's login.
	DeactivateUser(ctx context.Context, username string) error
}
