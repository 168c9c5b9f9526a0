package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tripweaver/internal/config"
	"tripweaver/pkg/utils"
)

const adminSubject = "admin"

type AuthServiceInterface interface {
	// IssueAdminToken trades the admin password for a token that may change
	// settings.
	IssueAdminToken(ctx context.Context, password string) (string, error)
}

type AuthService struct {
	passwordHash string
	issuer       *utils.TokenIssuer
}

func NewAuthService(cfg *config.Config, issuer *utils.TokenIssuer) AuthServiceInterface {
	if cfg.AdminPasswordHash == "" {
		zap.L().Warn("ADMIN_PASSWORD_HASH is not set, admin login is disabled")
	}
	return &AuthService{
		passwordHash: cfg.AdminPasswordHash,
		issuer:       issuer,
	}
}

func (a *AuthService) IssueAdminToken(_ context.Context, password string) (string, error) {
	if a.passwordHash == "" || password == "" {
		return "", utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(a.passwordHash, password); err != nil {
		zap.L().Info("admin login rejected")
		return "", utils.ErrInvalidCredentials
	}

	token, err := a.issuer.CreateToken(adminSubject, utils.RoleAdmin)
	if err != nil {
		return "", fmt.Errorf("issue admin token: %w", err)
	}
	return token, nil
}
