package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"regadmin/internal/model"
)

// TokenRepository persists issued tokens. Rows are append-only; nothing in
// the system revokes them before their signature expiry.
type TokenRepository interface {
	CreateAccessToken(ctx context.Context, userID uuid.UUID, token string) error
	CreateRefreshToken(ctx context.Context, userID uuid.UUID, token string) error
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository builds a GORM-backed token repository.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) CreateAccessToken(ctx context.Context, userID uuid.UUID, token string) error {
	return r.db.WithContext(ctx).Create(&model.AccessToken{UserID: userID, Token: token}).Error
}

func (r *tokenRepository) CreateRefreshToken(ctx context.Context, userID uuid.UUID, token string) error {
	return r.db.WithContext(ctx).Create(&model.RefreshToken{UserID: userID, Token: token}).Error
}
