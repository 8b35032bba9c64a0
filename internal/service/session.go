package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"storefront/internal/cache"
	"storefront/internal/model"
)

// SessionTTL bounds every admin session; the cookie max-age mirrors it.
const SessionTTL = 24 * time.Hour

const sessionKeyPrefix = "session:"

var (
	randRead      = rand.Read
	jsonMarshal   = json.Marshal
	jsonUnmarshal = json.Unmarshal
)

// SessionRecord binds a bearer token to the admin it was issued for. It
// lives server-side, keyed by the token, and expires with the cache TTL.
type SessionRecord struct {
	AdminID int    `json:"admin_id"`
	Email   string `json:"email"`
}

// IssueSession mints an unguessable token (32 random bytes, URL-safe
// base64) and stores the record under it. The token carries no identity
// itself; only the server-side record does.
func IssueSession(ctx context.Context, c cache.Cache, admin model.Admin, ttl time.Duration) (string, error) {
	buf := make([]byte, 32)
	if _, err := randRead(buf); err != nil {
		return "", fmt.Errorf("IssueSession: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	data, err := jsonMarshal(SessionRecord{AdminID: admin.ID, Email: admin.Email})
	if err != nil {
		return "", fmt.Errorf("IssueSession: %w", err)
	}
	if err := c.Set(ctx, sessionKeyPrefix+token, data, ttl).Err(); err != nil {
		return "", fmt.Errorf("IssueSession: %w", err)
	}
	return token, nil
}

// ValidateSession resolves a token to its record. Missing, unknown, and
// expired tokens are indistinguishable: all return an error.
func ValidateSession(ctx context.Context, c cache.Cache, token string) (*SessionRecord, error) {
	if token == "" {
		return nil, fmt.Errorf("ValidateSession: empty token")
	}
	data, err := c.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return nil, fmt.Errorf("ValidateSession: %w", err)
	}
	rec := &SessionRecord{}
	if err := jsonUnmarshal([]byte(data), rec); err != nil {
		return nil, fmt.Errorf("ValidateSession: %w", err)
	}
	return rec, nil
}

// RevokeSession deletes the record immediately. Validation of the same
// token afterwards fails.
func RevokeSession(ctx context.Context, c cache.Cache, token string) error {
	if err := c.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("RevokeSession: %w", err)
	}
	return nil
}
