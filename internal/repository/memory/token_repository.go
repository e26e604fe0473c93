package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// RefreshToken is an opaque token issued alongside a JWT so an admin
// session can be renewed without re-entering credentials.
type RefreshToken struct {
	Token     string
	UserID    uuid.UUID
	ExpiresAt time.Time
}

type TokenRepository struct {
	cache *cache.Cache
}

func NewTokenRepository(ttl time.Duration) *TokenRepository {
	// Purge expired tokens every 10 minutes
	c := cache.New(ttl, 10*time.Minute)
	return &TokenRepository{
		cache: c,
	}
}

func (r *TokenRepository) Save(token *RefreshToken) {
	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		// A negative duration would make go-cache keep the entry forever
		return
	}
	r.cache.Set(token.Token, token, ttl)
}

func (r *TokenRepository) Get(token string) (*RefreshToken, bool) {
	if x, found := r.cache.Get(token); found {
		return x.(*RefreshToken), true
	}
	return nil, false
}

func (r *TokenRepository) Delete(token string) {
	r.cache.Delete(token)
}

// DeleteByUser revokes every refresh token belonging to the user, e.g.
// after a password change.
func (r *TokenRepository) DeleteByUser(userID uuid.UUID) {
	for key, item := range r.cache.Items() {
		if t, ok := item.Object.(*RefreshToken); ok && t.UserID == userID {
			r.cache.Delete(key)
		}
	}
}
