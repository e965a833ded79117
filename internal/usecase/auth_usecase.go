package usecase

import (
	"context"

	"ralph-xpert-backend/internal/domain"
	"ralph-xpert-backend/pkg/apperror"
	"ralph-xpert-backend/pkg/auth"
	"ralph-xpert-backend/pkg/logger"
)

type authUsecase struct {
	credentials *auth.CredentialStore
	tokens      *auth.TokenService
}

func NewAuthUsecase(credentials *auth.CredentialStore, tokens *auth.TokenService) domain.AuthUsecase {
	return &authUsecase{
		credentials: credentials,
		tokens:      tokens,
	}
}

func (u *authUsecase) Login(ctx context.Context, username, password string) (string, *domain.AdminUser, error) {
	if !u.credentials.Verify(username, password) {
		return "", nil, apperror.Unauthorized("Identifiants incorrects")
	}

	token, err := u.tokens.Issue(username, domain.RoleAdmin)
	if err != nil {
		logger.Log.Error("token signing failed", "error", err, "username", username)
		return "", nil, apperror.Internal("Erreur serveur", err)
	}

	return token, &domain.AdminUser{Username: username, Role: domain.RoleAdmin}, nil
}
