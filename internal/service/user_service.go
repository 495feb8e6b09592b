package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"regadmin/internal/auth"
	"regadmin/internal/errors"
	"regadmin/internal/model"
	"regadmin/internal/query"
	"regadmin/internal/repository"
)

// IdentificationInput is one identity document in a profile payload.
type IdentificationInput struct {
	CardType string
	CardCode string
}

// UserInfoInput is the civil-profile part of a registration or update.
type UserInfoInput struct {
	FirstName       string
	LastName        string
	Gender          string
	DateOfBirth     time.Time
	MaritalStatus   string
	Occupation      string
	Address         string
	PhoneNumber     string
	Email           string
	Identifications []IdentificationInput
}

// CreateUserInput is the full-profile registration payload.
type CreateUserInput struct {
	Username string
	Password string
	FullName string
	RoleIDs  []uuid.UUID
	BranchID *uuid.UUID
	Info     UserInfoInput
}

// UserListParams are the recognized list filters for users.
type UserListParams struct {
	Search        string
	Gender        string
	MaritalStatus string
	CardType      string
	CardCode      string
	IDSearch      string
	BranchID      *uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
	Options       query.Options
}

// UserUpdateInput is a partial user update.
type UserUpdateInput struct {
	FullName *string
	BranchID *uuid.UUID
	IsActive *bool
	RoleIDs  []uuid.UUID
}

// UserService handles user and profile operations.
type UserService interface {
	CreateWithInfo(ctx context.Context, in CreateUserInput) (*model.User, TokenPair, error)
	List(ctx context.Context, p UserListParams) ([]model.User, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	Update(ctx context.Context, id uuid.UUID, in UserUpdateInput) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error

	GetUserInfo(ctx context.Context, id uuid.UUID) (*model.UserInfo, error)
	ListUserInfo(ctx context.Context, p UserListParams) ([]model.UserInfo, int64, error)
	UpdateUserInfo(ctx context.Context, id uuid.UUID, in UserInfoInput) (*model.UserInfo, error)
}

type userService struct {
	users      repository.UserRepository
	infos      repository.UserInfoRepository
	roles      repository.RoleRepository
	tokens     repository.TokenRepository
	jwt        *auth.JWTService
	bcryptCost int
}

// NewUserService creates the user service.
func NewUserService(
	users repository.UserRepository,
	infos repository.UserInfoRepository,
	roles repository.RoleRepository,
	tokens repository.TokenRepository,
	jwt *auth.JWTService,
	bcryptCost int,
) UserService {
	return &userService{
		users:      users,
		infos:      infos,
		roles:      roles,
		tokens:     tokens,
		jwt:        jwt,
		bcryptCost: bcryptCost,
	}
}

// checkIdentifications rejects pairs already registered to another profile
// and duplicates within the payload itself.
func (s *userService) checkIdentifications(ctx context.Context, idents []IdentificationInput, selfID uuid.UUID) error {
	seen := make(map[string]bool, len(idents))
	for _, ident := range idents {
		key := ident.CardType + "|" + ident.CardCode
		if seen[key] {
			return errors.ErrDuplicateIdentification
		}
		seen[key] = true

		owner, err := s.infos.IdentificationOwner(ctx, ident.CardType, ident.CardCode)
		if err != nil {
			return fmt.Errorf("check identification: %w", err)
		}
		if owner != uuid.Nil && owner != selfID {
			return errors.ErrDuplicateIdentification
		}
	}
	return nil
}

func (s *userService) checkEmail(ctx context.Context, email string, selfID uuid.UUID) error {
	if email == "" {
		return nil
	}
	existing, err := s.infos.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return fmt.Errorf("check email: %w", err)
	}
	if existing.ID != selfID {
		return errors.ErrDuplicateEmail
	}
	return nil
}

// CreateWithInfo creates the profile and the user atomically, then issues
// and stores tokens for the new account.
func (s *userService) CreateWithInfo(ctx context.Context, in CreateUserInput) (*model.User, TokenPair, error) {
	if _, err := s.users.FindByUsername(ctx, in.Username); err == nil {
		return nil, TokenPair{}, errors.ErrUserExists
	} else if err != gorm.ErrRecordNotFound {
		return nil, TokenPair{}, fmt.Errorf("check username: %w", err)
	}

	if err := s.checkIdentifications(ctx, in.Info.Identifications, uuid.Nil); err != nil {
		return nil, TokenPair{}, err
	}
	if err := s.checkEmail(ctx, in.Info.Email, uuid.Nil); err != nil {
		return nil, TokenPair{}, err
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

	info := &model.UserInfo{
		FirstName:     in.Info.FirstName,
		LastName:      in.Info.LastName,
		Gender:        in.Info.Gender,
		DateOfBirth:   in.Info.DateOfBirth,
		MaritalStatus: in.Info.MaritalStatus,
		Occupation:    in.Info.Occupation,
		Address:       in.Info.Address,
		PhoneNumber:   in.Info.PhoneNumber,
		Email:         in.Info.Email,
	}
	for _, ident := range in.Info.Identifications {
		info.Identifications = append(info.Identifications, model.Identification{
			CardType: ident.CardType,
			CardCode: ident.CardCode,
		})
	}

	user := &model.User{
		Username: in.Username,
		FullName: in.FullName,
		Password: hash,
		BranchID: in.BranchID,
		IsActive: true,
		Roles:    roles,
	}
	if err := s.users.CreateWithInfo(ctx, user, info); err != nil {
		return nil, TokenPair{}, fmt.Errorf("create user with info: %w", err)
	}

	tokens := TokenPair{}
	tokens.AccessToken, err = s.jwt.IssueAccessToken(user.ID)
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("issue access token: %w", err)
	}
	tokens.RefreshToken, err = s.jwt.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("issue refresh token: %w", err)
	}
	if err := s.tokens.CreateRefreshToken(ctx, user.ID, tokens.RefreshToken); err != nil {
		return nil, TokenPair{}, fmt.Errorf("store refresh token: %w", err)
	}
	if err := s.tokens.CreateAccessToken(ctx, user.ID, tokens.AccessToken); err != nil {
		return nil, TokenPair{}, fmt.Errorf("store access token: %w", err)
	}

	populated, err := s.users.FindByIDPopulated(ctx, user.ID, []string{"roleId", "userInfoId"})
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("reload user: %w", err)
	}
	populated.Password = ""
	return populated, tokens, nil
}

// userFilter translates list params into the conjunction for the joined
// user/profile query. Absent parameters add nothing.
func userFilter(p UserListParams) (query.Filter, bool) {
	f := query.Filter{}.
		With("(user_infos.deleted = ? OR user_infos.id IS NULL)", false)

	if p.BranchID != nil {
		f = f.WithID("users.branch_id", *p.BranchID)
	}
	f = f.WithDateRange("users.created_at", p.StartDate, p.EndDate)
	f = f.WithTextSearch([]string{
		"user_infos.first_name",
		"user_infos.last_name",
		"user_infos.phone_number",
		"user_infos.email",
	}, p.Search)
	f = f.WithEqual("user_infos.gender", p.Gender)
	f = f.WithEqual("user_infos.marital_status", p.MaritalStatus)

	joinIdent := p.CardType != "" || p.CardCode != "" || p.IDSearch != ""
	f = f.WithEqual("identifications.card_type", p.CardType)
	f = f.WithEqual("identifications.card_code", p.CardCode)
	f = f.WithTextSearch([]string{
		"identifications.card_type",
		"identifications.card_code",
	}, p.IDSearch)

	return f, joinIdent
}

func (s *userService) List(ctx context.Context, p UserListParams) ([]model.User, int64, error) {
	f, joinIdent := userFilter(p)
	users, total, err := s.users.List(ctx, f, p.Options.Qualify("users"), joinIdent)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, total, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByIDPopulated(ctx, id, []string{"roleId"})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, in UserUpdateInput) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}

	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.BranchID != nil {
		user.BranchID = in.BranchID
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	if in.RoleIDs != nil {
		roles, err := s.roles.FindByIDs(ctx, in.RoleIDs)
		if err != nil {
			return nil, fmt.Errorf("load roles: %w", err)
		}
		if err := s.users.ReplaceRoles(ctx, user, roles); err != nil {
			return nil, fmt.Errorf("replace roles: %w", err)
		}
	}

	updated, err := s.users.FindByIDPopulated(ctx, id, []string{"roleId"})
	if err != nil {
		return nil, err
	}
	updated.Password = ""
	return updated, nil
}

// Delete removes the user row for good; the profile is kept.
func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *userService) GetUserInfo(ctx context.Context, id uuid.UUID) (*model.UserInfo, error) {
	info, err := s.infos.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}
	if info.Deleted {
		return nil, errors.ErrNotFound
	}
	return info, nil
}

func (s *userService) ListUserInfo(ctx context.Context, p UserListParams) ([]model.UserInfo, int64, error) {
	f := query.Filter{}.WithBool("user_infos.deleted", false)
	f = f.WithDateRange("user_infos.created_at", p.StartDate, p.EndDate)
	f = f.WithTextSearch([]string{
		"user_infos.first_name",
		"user_infos.last_name",
		"user_infos.phone_number",
		"user_infos.email",
	}, p.Search)
	f = f.WithEqual("user_infos.gender", p.Gender)
	f = f.WithEqual("user_infos.marital_status", p.MaritalStatus)

	joinIdent := p.CardType != "" || p.CardCode != "" || p.IDSearch != ""
	f = f.WithEqual("identifications.card_type", p.CardType)
	f = f.WithEqual("identifications.card_code", p.CardCode)
	f = f.WithTextSearch([]string{
		"identifications.card_type",
		"identifications.card_code",
	}, p.IDSearch)

	infos, total, err := s.infos.List(ctx, f, p.Options.Qualify("user_infos"), joinIdent)
	if err != nil {
		return nil, 0, fmt.Errorf("list user infos: %w", err)
	}
	return infos, total, nil
}

func (s *userService) UpdateUserInfo(ctx context.Context, id uuid.UUID, in UserInfoInput) (*model.UserInfo, error) {
	info, err := s.infos.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}
	if info.Deleted {
		return nil, errors.ErrNotFound
	}

	if err := s.checkIdentifications(ctx, in.Identifications, info.ID); err != nil {
		return nil, err
	}
	if err := s.checkEmail(ctx, in.Email, info.ID); err != nil {
		return nil, err
	}

	if in.FirstName != "" {
		info.FirstName = in.FirstName
	}
	if in.LastName != "" {
		info.LastName = in.LastName
	}
	if in.Gender != "" {
		info.Gender = in.Gender
	}
	if !in.DateOfBirth.IsZero() {
		info.DateOfBirth = in.DateOfBirth
	}
	if in.MaritalStatus != "" {
		info.MaritalStatus = in.MaritalStatus
	}
	if in.Occupation != "" {
		info.Occupation = in.Occupation
	}
	if in.Address != "" {
		info.Address = in.Address
	}
	if in.PhoneNumber != "" {
		info.PhoneNumber = in.PhoneNumber
	}
	if in.Email != "" {
		info.Email = in.Email
	}

	if err := s.infos.Update(ctx, info); err != nil {
		return nil, fmt.Errorf("update user info: %w", err)
	}

	if in.Identifications != nil {
		idents := make([]model.Identification, 0, len(in.Identifications))
		for _, ident := range in.Identifications {
			idents = append(idents, model.Identification{
				UserInfoID: info.ID,
				CardType:   ident.CardType,
				CardCode:   ident.CardCode,
			})
		}
		if err := s.infos.ReplaceIdentifications(ctx, info, idents); err != nil {
			return nil, fmt.Errorf("replace identifications: %w", err)
		}
	}

	return s.infos.FindByID(ctx, id)
}
