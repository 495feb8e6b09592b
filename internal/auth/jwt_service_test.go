package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"regadmin/internal/errors"
)

func newTestService() *JWTService {
	return NewJWTService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestAccessToken_RoundTrip(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	token, err := svc.IssueAccessToken(userID)
	assert.NoError(t, err)

	claims, err := svc.VerifyAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, SubjectAccess, claims.Subject)
}

func TestRefreshToken_NotValidAsAccess(t *testing.T) {
	svc := newTestService()

	refresh, err := svc.IssueRefreshToken(uuid.New())
	assert.NoError(t, err)

	_, err = svc.VerifyAccessToken(refresh)
	assert.ErrorIs(t, err, errors.ErrTokenInvalid)
}

func TestAccessToken_NotValidAsRefresh(t *testing.T) {
	svc := newTestService()

	access, err := svc.IssueAccessToken(uuid.New())
	assert.NoError(t, err)

	_, err = svc.VerifyRefreshToken(access)
	assert.ErrorIs(t, err, errors.ErrTokenInvalid)
}

func TestAccessToken_Expired(t *testing.T) {
	svc := NewJWTService("access-secret", "refresh-secret", -time.Minute, 7*24*time.Hour)

	token, err := svc.IssueAccessToken(uuid.New())
	assert.NoError(t, err)

	_, err = svc.VerifyAccessToken(token)
	assert.ErrorIs(t, err, errors.ErrTokenExpired)
}

func TestAccessToken_WrongSecret(t *testing.T) {
	issuer := NewJWTService("one-secret", "refresh", 15*time.Minute, time.Hour)
	verifier := NewJWTService("other-secret", "refresh", 15*time.Minute, time.Hour)

	token, err := issuer.IssueAccessToken(uuid.New())
	assert.NoError(t, err)

	_, err = verifier.VerifyAccessToken(token)
	assert.ErrorIs(t, err, errors.ErrTokenInvalid)
}

func TestVerify_Garbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.VerifyAccessToken("not-a-jwt")
	assert.ErrorIs(t, err, errors.ErrTokenInvalid)

	_, err = svc.VerifyAccessToken("")
	assert.ErrorIs(t, err, errors.ErrTokenInvalid)
}
