package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const revocationKeyPrefix = "revoked:"

// RevocationList is a redis-backed deny-list of token IDs. Stateless tokens
// cannot be force-expired on logout or role change; revoked jtis are held
// here until the token would have expired on its own, and checked on every
// verification.
type RevocationList struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRevocationList builds the deny-list. A nil client disables revocation;
// verification then degrades to signature and expiry checks only.
func NewRevocationList(client *redis.Client, logger *zap.Logger) *RevocationList {
	return &RevocationList{client: client, logger: logger}
}

// Revoke records the token ID until its natural expiry.
func (r *RevocationList) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	if r == nil || r.client == nil || jti == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, revocationKeyPrefix+jti, "1", ttl).Err()
}

// IsRevoked reports whether the token ID is on the deny-list. Redis outages
// degrade to "not revoked" rather than rejecting every request.
func (r *RevocationList) IsRevoked(ctx context.Context, jti string) bool {
	if r == nil || r.client == nil || jti == "" {
		return false
	}
	n, err := r.client.Exists(ctx, revocationKeyPrefix+jti).Result()
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("revocation check failed", zap.Error(err))
		}
		return false
	}
	return n > 0
}
