package v1

import (
	"time"

	"github.com/centsible/backend/internal/models"
)

type RegisterEditable struct {
	Email    string `json:"email" example:"jane@example.com"`   // Email address used for login
	Password string `json:"password" example:"correct-horse-9"` // At least 8 characters
}

type LoginEditable struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"correct-horse-9"`
}

// User is the representation of a User in API v1. The password hash
// is never part of it.
type User struct {
	models.DefaultModel
	Email string `json:"email" example:"jane@example.com"`
}

func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Email:        model.Email,
	}
}

type UserResponse struct {
	Data  *User   `json:"data"`                                             // The user
	Error *string `json:"error" example:"the email address is not valid"`   // The error, if any occurred
}

// Login is the result of a successful login.
type Login struct {
	Token     string    `json:"token" example:"60a1dfaa-c382-4227-a7db-b438dc4fec29"` // Bearer token for all authenticated requests
	ExpiresAt time.Time `json:"expiresAt" example:"2026-09-05T19:28:44.491514Z"`     // Time the session expires at
	User      User      `json:"user"`                                                //
}

type LoginResponse struct {
	Data  *Login  `json:"data"`                                                  // The session data
	Error *string `json:"error" example:"the email address or password is incorrect"` // The error, if any occurred
}
