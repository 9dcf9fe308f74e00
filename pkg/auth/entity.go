package auth

import "errors"

// Role selects which side of the marketplace a user acts on.
type Role string

const (
	RoleClient Role = "client"
	RoleWorker Role = "worker"
)

// User is the identity handed out by login.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

var ErrInvalidCredentials = errors.New("invalid credentials")
