package domain

import "context"

const RoleAdmin = "admin"

// AdminUser is the authenticated identity echoed back on login.
type AdminUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthUsecase interface {
	// Login validates the credentials and returns a signed session token
	// with the authenticated identity.
	Login(ctx context.Context, username, password string) (string, *AdminUser, error)
}
