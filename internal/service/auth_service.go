package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"regadmin/internal/auth"
	"regadmin/internal/errors"
	"regadmin/internal/model"
	"regadmin/internal/repository"
)

// RegisterInput is the payload for creating a user account.
type RegisterInput struct {
	Username string
	Password string
	FullName string
	RoleIDs  []uuid.UUID
	BranchID *uuid.UUID
}

// TokenPair is the signed token set handed to a client.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*model.User, TokenPair, error)
	Register(ctx context.Context, in RegisterInput) (*model.User, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	Me(ctx context.Context, userID uuid.UUID) (*model.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error
	ResetPasswordByAdmin(ctx context.Context, userID uuid.UUID, next string) error
}

type authService struct {
	users      repository.UserRepository
	roles      repository.RoleRepository
	tokens     repository.TokenRepository
	jwt        *auth.JWTService
	bcryptCost int
}

// NewAuthService creates the authentication service.
func NewAuthService(
	users repository.UserRepository,
	roles repository.RoleRepository,
	tokens repository.TokenRepository,
	jwt *auth.JWTService,
	bcryptCost int,
) AuthService {
	return &authService{
		users:      users,
		roles:      roles,
		tokens:     tokens,
		jwt:        jwt,
		bcryptCost: bcryptCost,
	}
}

// issueAndStore signs one access and one refresh token and appends both as
// rows. Earlier tokens stay valid until their own expiry; there is no
// revocation on reissue.
func (s *authService) issueAndStore(ctx context.Context, userID uuid.UUID) (TokenPair, error) {
	accessToken, err := s.jwt.IssueAccessToken(userID)
	if err != nil {
		return TokenPair{}, fmt.Errorf("issue access token: %w", err)
	}
	refreshToken, err := s.jwt.IssueRefreshToken(userID)
	if err != nil {
		return TokenPair{}, fmt.Errorf("issue refresh token: %w", err)
	}
	if err := s.tokens.CreateRefreshToken(ctx, userID, refreshToken); err != nil {
		return TokenPair{}, fmt.Errorf("store refresh token: %w", err)
	}
	if err := s.tokens.CreateAccessToken(ctx, userID, accessToken); err != nil {
		return TokenPair{}, fmt.Errorf("store access token: %w", err)
	}
	return TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Login authenticates by username and password and returns the user with
// its roles populated plus a fresh access token.
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, TokenPair, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, TokenPair{}, errors.ErrInvalidCredentials
	}
	if !auth.VerifyPassword(password, user.Password) {
		return nil, TokenPair{}, errors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, TokenPair{}, errors.ErrUserInactive
	}

	tokens, err := s.issueAndStore(ctx, user.ID)
	if err != nil {
		return nil, TokenPair{}, err
	}

	user.Password = ""
	return user, tokens, nil
}

// Register creates a user with a hashed password, assigns the given roles
// and issues tokens.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, TokenPair, error) {
	if _, err := s.users.FindByUsername(ctx, in.Username); err == nil {
		return nil, TokenPair{}, errors.ErrUserExists
	} else if err != gorm.ErrRecordNotFound {
		return nil, TokenPair{}, fmt.Errorf("check username: %w", err)
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("hash password: %w", err)
	}

	var roles []model.Role
	if len(in.RoleIDs) > 0 {
		roles, err = s.roles.FindByIDs(ctx, in.RoleIDs)
		if err != nil {
			return nil, TokenPair{}, fmt.Errorf("load roles: %w", err)
		}
	}

	user := &model.User{
		Username: in.Username,
		FullName: in.FullName,
		Password: hash,
		BranchID: in.BranchID,
		IsActive: true,
		Roles:    roles,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, TokenPair{}, fmt.Errorf("create user: %w", err)
	}

	tokens, err := s.issueAndStore(ctx, user.ID)
	if err != nil {
		return nil, TokenPair{}, err
	}

	user.Password = ""
	return user, tokens, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair. The old
// refresh token keeps working until it expires on its own.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.jwt.VerifyRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, err
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return TokenPair{}, errors.ErrTokenInvalid
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return TokenPair{}, errors.ErrTokenInvalid
		}
		return TokenPair{}, err
	}
	if !user.IsActive {
		return TokenPair{}, errors.ErrUserInactive
	}
	return s.issueAndStore(ctx, user.ID)
}

// Me returns the sanitized profile with role, branch and user info populated.
func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByIDPopulated(ctx, userID, []string{"roleId", "branchId", "userInfoId"})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrNotFound
		}
		return err
	}
	if !auth.VerifyPassword(current, user.Password) {
		return errors.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(next, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.UpdatePassword(ctx, userID, hash)
}

// ResetPasswordByAdmin replaces a user's password without the old one.
func (s *authService) ResetPasswordByAdmin(ctx context.Context, userID uuid.UUID, next string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrNotFound
		}
		return err
	}

	hash, err := auth.HashPassword(next, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.UpdatePassword(ctx, user.ID, hash)
}
