package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"regadmin/internal/auth"
	"regadmin/internal/errors"
	"regadmin/internal/model"
)

func testJWT() *auth.JWTService {
	return auth.NewJWTService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func hashOf(t *testing.T, plain string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	tokenRepo := new(MockTokenRepository)
	svc := NewAuthService(userRepo, roleRepo, tokenRepo, testJWT(), bcrypt.MinCost)

	userID := uuid.New()
	userRepo.On("FindByUsername", mock.Anything, "clerk").Return(&model.User{
		ID:       userID,
		Username: "clerk",
		Password: hashOf(t, "secret-pass"),
		IsActive: true,
		Roles:    []model.Role{{Name: "Staff"}},
	}, nil)
	tokenRepo.On("CreateRefreshToken", mock.Anything, userID, mock.AnythingOfType("string")).Return(nil)
	tokenRepo.On("CreateAccessToken", mock.Anything, userID, mock.AnythingOfType("string")).Return(nil)

	user, tokens, err := svc.Login(context.Background(), "clerk", "secret-pass")

	assert.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Empty(t, user.Password)
	tokenRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, new(MockRoleRepository), new(MockTokenRepository), testJWT(), bcrypt.MinCost)

	userRepo.On("FindByUsername", mock.Anything, "clerk").Return(&model.User{
		Username: "clerk",
		Password: hashOf(t, "secret-pass"),
		IsActive: true,
	}, nil)

	_, _, err := svc.Login(context.Background(), "clerk", "wrong")
	assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, new(MockRoleRepository), new(MockTokenRepository), testJWT(), bcrypt.MinCost)

	userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, new(MockRoleRepository), new(MockTokenRepository), testJWT(), bcrypt.MinCost)

	userRepo.On("FindByUsername", mock.Anything, "clerk").Return(&model.User{
		Username: "clerk",
		Password: hashOf(t, "secret-pass"),
		IsActive: false,
	}, nil)

	_, _, err := svc.Login(context.Background(), "clerk", "secret-pass")
	assert.ErrorIs(t, err, errors.ErrUserInactive)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, new(MockRoleRepository), new(MockTokenRepository), testJWT(), bcrypt.MinCost)

	userRepo.On("FindByUsername", mock.Anything, "clerk").Return(&model.User{Username: "clerk"}, nil)

	_, _, err := svc.Register(context.Background(), RegisterInput{Username: "clerk", Password: "secret-pass"})
	assert.ErrorIs(t, err, errors.ErrUserExists)
}

func TestRegister_AssignsRolesAndIssuesTokens(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	tokenRepo := new(MockTokenRepository)
	svc := NewAuthService(userRepo, roleRepo, tokenRepo, testJWT(), bcrypt.MinCost)

	roleID := uuid.New()
	userRepo.On("FindByUsername", mock.Anything, "newbie").Return(nil, gorm.ErrRecordNotFound)
	roleRepo.On("FindByIDs", mock.Anything, []uuid.UUID{roleID}).Return([]model.Role{{ID: roleID, Name: "Staff"}}, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Username == "newbie" && len(u.Roles) == 1 && u.IsActive
	})).Return(nil)
	tokenRepo.On("CreateRefreshToken", mock.Anything, mock.Anything, mock.AnythingOfType("string")).Return(nil)
	tokenRepo.On("CreateAccessToken", mock.Anything, mock.Anything, mock.AnythingOfType("string")).Return(nil)

	user, tokens, err := svc.Register(context.Background(), RegisterInput{
		Username: "newbie",
		Password: "secret-pass",
		FullName: "New Clerk",
		RoleIDs:  []uuid.UUID{roleID},
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.Empty(t, user.Password)
	assert.NotEqual(t, "secret-pass", user.Password)
	tokenRepo.AssertExpectations(t)
}

func TestRefresh_ReissuesForActiveUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockTokenRepository)
	jwtSvc := testJWT()
	svc := NewAuthService(userRepo, new(MockRoleRepository), tokenRepo, jwtSvc, bcrypt.MinCost)

	userID := uuid.New()
	refresh, err := jwtSvc.IssueRefreshToken(userID)
	assert.NoError(t, err)

	userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, IsActive: true}, nil)
	tokenRepo.On("CreateRefreshToken", mock.Anything, userID, mock.AnythingOfType("string")).Return(nil)
	tokenRepo.On("CreateAccessToken", mock.Anything, userID, mock.AnythingOfType("string")).Return(nil)

	tokens, err := svc.Refresh(context.Background(), refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	jwtSvc := testJWT()
	svc := NewAuthService(new(MockUserRepository), new(MockRoleRepository), new(MockTokenRepository), jwtSvc, bcrypt.MinCost)

	access, err := jwtSvc.IssueAccessToken(uuid.New())
	assert.NoError(t, err)

	_, err = svc.Refresh(context.Background(), access)
	assert.ErrorIs(t, err, errors.ErrTokenInvalid)
}

func TestChangePassword_RequiresCurrent(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, new(MockRoleRepository), new(MockTokenRepository), testJWT(), bcrypt.MinCost)

	userID := uuid.New()
	userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{
		ID:       userID,
		Password: hashOf(t, "old-pass"),
	}, nil)

	err := svc.ChangePassword(context.Background(), userID, "not-old-pass", "new-pass-123")
	assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}
