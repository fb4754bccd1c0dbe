package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const AdminSessionPrefix = "adminSession:"

// AdminSession holds one logged-in admin's state, including the backend token
// used for every call to the booking backend. Replaces the ambient token the
// SPA kept in browser storage.
type AdminSession struct {
	SessionID    string    `json:"sessionId"`
	Username     string    `json:"username"`
	BackendToken string    `json:"backendToken"`
	CreatedAt    time.Time `json:"createdAt"`
	LastSeenAt   time.Time `json:"lastSeenAt"`
}

// SaveAdminSession stores the session in Redis with the given TTL.
func SaveAdminSession(ctx context.Context, client *redis.Client, session AdminSession, ttl time.Duration) error {
	session.LastSeenAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal admin session: %w", err)
	}
	if err := client.Set(ctx, AdminSessionPrefix+session.SessionID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save admin session: %w", err)
	}
	return nil
}

// GetAdminSession retrieves a session from Redis.
func GetAdminSession(ctx context.Context, client *redis.Client, sessionID string) (*AdminSession, error) {
	data, err := client.Get(ctx, AdminSessionPrefix+sessionID).Result()
	if err != nil {
		return nil, err
	}
	var session AdminSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal admin session: %w", err)
	}
	return &session, nil
}

// DeleteAdminSession removes a session from Redis.
func DeleteAdminSession(ctx context.Context, client *redis.Client, sessionID string) error {
	return client.Del(ctx, AdminSessionPrefix+sessionID).Err()
}
