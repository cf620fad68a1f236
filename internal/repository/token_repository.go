package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanmind/internal/domain"
)

// TokenRepository defines data access for auth tokens
type TokenRepository interface {
	Create(ctx context.Context, token *domain.AuthToken) error
	FindByKey(ctx context.Context, key string) (*domain.AuthToken, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.AuthToken, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

// Create creates a new token
func (r *tokenRepository) Create(ctx context.Context, token *domain.AuthToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// FindByKey finds a token by its key
func (r *tokenRepository) FindByKey(ctx context.Context, key string) (*domain.AuthToken, error) {
	var token domain.AuthToken
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// FindByUserID finds the token held by a user
func (r *tokenRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.AuthToken, error) {
	var token domain.AuthToken
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// Delete removes a token
func (r *tokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.AuthToken{}, "id = ?", id).Error
}

// DeleteExpired removes all tokens whose expiry is in the past and
// returns the number of rows deleted.
func (r *tokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at < ?", now).
		Delete(&domain.AuthToken{})
	return result.RowsAffected, result.Error
}
