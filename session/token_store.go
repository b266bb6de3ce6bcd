// Package session tracks issued bearer tokens in redis so that logout
// and user deletion revoke them before their JWT expiry.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type TokenStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTokenStore(rdb *redis.Client, ttl time.Duration) *TokenStore {
	return &TokenStore{rdb: rdb, ttl: ttl}
}

// Session is what we keep per issued token.
type Session struct {
	UserID    uint  `json:"uid"`
	IssuedAt  int64 `json:"iat"`
	ExpiresAt int64 `json:"exp"`
}

func key(jti string) string      { return fmt.Sprintf("app:sess:%s", jti) }
func userSetKey(uid uint) string { return fmt.Sprintf("app:user_sessions:%d", uid) }

// Create registers a freshly issued token. The per-user set lets
// RevokeAllForUser find every live session later.
func (s *TokenStore) Create(ctx context.Context, jti string, userID uint) error {
	now := time.Now()
	b, _ := json.Marshal(Session{
		UserID:    userID,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.ttl).Unix(),
	})
	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, key(jti), b, s.ttl)
	pipe.SAdd(ctx, userSetKey(userID), jti)
	pipe.Expire(ctx, userSetKey(userID), s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// Get returns the session for a jti, or an error if it was revoked or
// never existed.
func (s *TokenStore) Get(ctx context.Context, jti string) (*Session, error) {
	b, err := s.rdb.Get(ctx, key(jti)).Bytes()
	if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Delete revokes a single token (logout).
func (s *TokenStore) Delete(ctx context.Context, jti string) error {
	sess, _ := s.Get(ctx, jti) // best effort
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, key(jti))
	if sess != nil {
		pipe.SRem(ctx, userSetKey(sess.UserID), jti)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// RevokeAllForUser drops every live session of a user. Called when an
// account is deleted or deactivated.
func (s *TokenStore) RevokeAllForUser(ctx context.Context, userID uint) error {
	jtis, err := s.rdb.SMembers(ctx, userSetKey(userID)).Result()
	if err != nil && err != redis.Nil {
		return err
	}

	pipe := s.rdb.TxPipeline()
	for _, jti := range jtis {
		pipe.Del(ctx, key(jti))
	}
	pipe.Del(ctx, userSetKey(userID))
	_, err = pipe.Exec(ctx)
	return err
}
