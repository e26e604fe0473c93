package memory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRepositorySaveAndGet(t *testing.T) {
	repo := NewTokenRepository(time.Hour)
	userID := uuid.New()

	token := &RefreshToken{
		Token:     "tok-1",
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	repo.Save(token)

	got, ok := repo.Get("tok-1")
	require.True(t, ok)
	assert.Equal(t, userID, got.UserID)

	_, ok = repo.Get("unknown")
	assert.False(t, ok)
}

func TestTokenRepositoryExpiredTokenIsGone(t *testing.T) {
	repo := NewTokenRepository(time.Hour)

	repo.Save(&RefreshToken{
		Token:     "tok-expired",
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	_, ok := repo.Get("tok-expired")
	assert.False(t, ok)
}

func TestTokenRepositoryDelete(t *testing.T) {
	repo := NewTokenRepository(time.Hour)

	repo.Save(&RefreshToken{Token: "tok-1", UserID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)})
	repo.Delete("tok-1")

	_, ok := repo.Get("tok-1")
	assert.False(t, ok)
}

func TestTokenRepositoryDeleteByUser(t *testing.T) {
	repo := NewTokenRepository(time.Hour)
	userID := uuid.New()
	otherID := uuid.New()

	repo.Save(&RefreshToken{Token: "tok-a", UserID: userID, ExpiresAt: time.Now().Add(time.Hour)})
	repo.Save(&RefreshToken{Token: "tok-b", UserID: userID, ExpiresAt: time.Now().Add(time.Hour)})
	repo.Save(&RefreshToken{Token: "tok-c", UserID: otherID, ExpiresAt: time.Now().Add(time.Hour)})

	repo.DeleteByUser(userID)

	_, ok := repo.Get("tok-a")
	assert.False(t, ok)
	_, ok = repo.Get("tok-b")
	assert.False(t, ok)
	_, ok = repo.Get("tok-c")
	assert.True(t, ok, "other users' sessions must survive")
}
