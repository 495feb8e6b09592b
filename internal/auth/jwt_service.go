package auth

import (
	stderrors "errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"regadmin/internal/errors"
)

// Subject tags distinguishing the two token kinds.
const (
	SubjectAccess  = "accessApi"
	SubjectRefresh = "refreshToken"
)

// Claims are the JWT claims carried by both token kinds. The user id rides
// in the "id" claim.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies access and refresh tokens. The two kinds
// use distinct signing secrets and subject tags, so one can never stand in
// for the other.
type JWTService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewJWTService creates a JWT service with the given secrets and expiries.
func NewJWTService(accessSecret, refreshSecret string, accessExpiry, refreshExpiry time.Duration) *JWTService {
	return &JWTService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// IssueAccessToken signs a short-lived access token for the user.
func (s *JWTService) IssueAccessToken(userID uuid.UUID) (string, error) {
	return s.issue(userID, SubjectAccess, s.accessExpiry, s.accessSecret)
}

// IssueRefreshToken signs a long-lived refresh token for the user.
func (s *JWTService) IssueRefreshToken(userID uuid.UUID) (string, error) {
	return s.issue(userID, SubjectRefresh, s.refreshExpiry, s.refreshSecret)
}

func (s *JWTService) issue(userID uuid.UUID, subject string, expiry time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyAccessToken validates an access token and returns its claims.
// Expired tokens fail with errors.ErrTokenExpired, anything else malformed
// or tampered with errors.ErrTokenInvalid.
func (s *JWTService) VerifyAccessToken(token string) (*Claims, error) {
	return s.verify(token, SubjectAccess, s.accessSecret)
}

// VerifyRefreshToken validates a refresh token and returns its claims.
func (s *JWTService) VerifyRefreshToken(token string) (*Claims, error) {
	return s.verify(token, SubjectRefresh, s.refreshSecret)
}

func (s *JWTService) verify(tokenString, subject string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, stderrors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.ErrTokenExpired
		}
		return nil, errors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject != subject {
		return nil, errors.ErrTokenInvalid
	}
	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, errors.ErrTokenInvalid
	}
	return claims, nil
}
