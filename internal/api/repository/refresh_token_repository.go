package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bookhub/internal/api/models"

	"github.com/redis/go-redis/v9"
)

var ErrTokenNotFound = errors.New("refresh token not found")

// RefreshTokenStore persists refresh tokens.
type RefreshTokenStore interface {
	Save(ctx context.Context, token *models.RefreshToken) error
	Find(ctx context.Context, token string) (*models.RefreshToken, error)
	Delete(ctx context.Context, token string) error
}

// redisRefreshTokenStore keeps one key per token with a TTL equal to the
// token's remaining lifetime, so expiry needs no sweeper.
type redisRefreshTokenStore struct {
	client *redis.Client
}

func NewRefreshTokenStore(client *redis.Client) RefreshTokenStore {
	return &redisRefreshTokenStore{client: client}
}

func tokenKey(token string) string {
	return "refresh_token:" + token
}

func (s *redisRefreshTokenStore) Save(ctx context.Context, token *models.RefreshToken) error {
	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("refresh token already expired")
	}

	payload, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("marshal refresh token: %w", err)
	}
	if err := s.client.Set(ctx, tokenKey(token.Token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

func (s *redisRefreshTokenStore) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	raw, err := s.client.Get(ctx, tokenKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("find refresh token: %w", err)
	}

	var rt models.RefreshToken
	if err := json.Unmarshal([]byte(raw), &rt); err != nil {
		return nil, fmt.Errorf("unmarshal refresh token: %w", err)
	}
	return &rt, nil
}

func (s *redisRefreshTokenStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, tokenKey(token)).Err(); err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}
