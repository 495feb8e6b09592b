package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"regadmin/internal/model"
	"regadmin/internal/query"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDWithRoles(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDPopulated(ctx context.Context, id uuid.UUID, populate []string) (*model.User, error) {
	args := m.Called(ctx, id, populate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, f query.Filter, opts query.Options, joinIdentifications bool) ([]model.User, int64, error) {
	args := m.Called(ctx, f, opts, joinIdentifications)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}

func (m *MockUserRepository) ReplaceRoles(ctx context.Context, user *model.User, roles []model.Role) error {
	args := m.Called(ctx, user, roles)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) CreateWithInfo(ctx context.Context, user *model.User, info *model.UserInfo) error {
	args := m.Called(ctx, user, info)
	return args.Error(0)
}

// MockUserInfoRepository is a mock implementation of UserInfoRepository.
type MockUserInfoRepository struct {
	mock.Mock
}

func (m *MockUserInfoRepository) Create(ctx context.Context, info *model.UserInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

func (m *MockUserInfoRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UserInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserInfo), args.Error(1)
}

func (m *MockUserInfoRepository) FindByEmail(ctx context.Context, email string) (*model.UserInfo, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserInfo), args.Error(1)
}

func (m *MockUserInfoRepository) List(ctx context.Context, f query.Filter, opts query.Options, joinIdentifications bool) ([]model.UserInfo, int64, error) {
	args := m.Called(ctx, f, opts, joinIdentifications)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.UserInfo), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserInfoRepository) Update(ctx context.Context, info *model.UserInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

func (m *MockUserInfoRepository) ReplaceIdentifications(ctx context.Context, info *model.UserInfo, idents []model.Identification) error {
	args := m.Called(ctx, info, idents)
	return args.Error(0)
}

func (m *MockUserInfoRepository) IdentificationOwner(ctx context.Context, cardType, cardCode string) (uuid.UUID, error) {
	args := m.Called(ctx, cardType, cardCode)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// MockRoleRepository is a mock implementation of RoleRepository.
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) Create(ctx context.Context, role *model.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRoleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRoleRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Role, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Role), args.Error(1)
}

func (m *MockRoleRepository) List(ctx context.Context, f query.Filter, opts query.Options) ([]model.Role, int64, error) {
	args := m.Called(ctx, f, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Role), args.Get(1).(int64), args.Error(2)
}

func (m *MockRoleRepository) Update(ctx context.Context, role *model.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) ReplaceActions(ctx context.Context, role *model.Role, actions []model.Action) error {
	args := m.Called(ctx, role, actions)
	return args.Error(0)
}

func (m *MockRoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockActionRepository is a mock implementation of ActionRepository.
type MockActionRepository struct {
	mock.Mock
}

func (m *MockActionRepository) Create(ctx context.Context, action *model.Action) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func (m *MockActionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Action, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Action), args.Error(1)
}

func (m *MockActionRepository) FindByName(ctx context.Context, name string) (*model.Action, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Action), args.Error(1)
}

func (m *MockActionRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Action, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Action), args.Error(1)
}

func (m *MockActionRepository) List(ctx context.Context, f query.Filter, opts query.Options) ([]model.Action, int64, error) {
	args := m.Called(ctx, f, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Action), args.Get(1).(int64), args.Error(2)
}

func (m *MockActionRepository) Update(ctx context.Context, action *model.Action) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func (m *MockActionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTokenRepository is a mock implementation of TokenRepository.
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) CreateAccessToken(ctx context.Context, userID uuid.UUID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockTokenRepository) CreateRefreshToken(ctx context.Context, userID uuid.UUID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

// MockContentRepository is a mock implementation of ContentRepository.
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) Create(ctx context.Context, content *model.Content) error {
	args := m.Called(ctx, content)
	return args.Error(0)
}

func (m *MockContentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Content, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Content), args.Error(1)
}

func (m *MockContentRepository) FindByTitle(ctx context.Context, title string) (*model.Content, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Content), args.Error(1)
}

func (m *MockContentRepository) List(ctx context.Context, f query.Filter, opts query.Options) ([]model.Content, int64, error) {
	args := m.Called(ctx, f, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Content), args.Get(1).(int64), args.Error(2)
}

func (m *MockContentRepository) Update(ctx context.Context, content *model.Content) error {
	args := m.Called(ctx, content)
	return args.Error(0)
}

func (m *MockContentRepository) MarkDeleted(ctx context.Context, id uuid.UUID, updatedBy uuid.UUID) error {
	args := m.Called(ctx, id, updatedBy)
	return args.Error(0)
}

// MockEventRepository is a mock implementation of EventRepository.
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context, f query.Filter, opts query.Options) ([]model.Event, int64, error) {
	args := m.Called(ctx, f, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Event), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventRepository) Update(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockHeroSliderRepository is a mock implementation of HeroSliderRepository.
type MockHeroSliderRepository struct {
	mock.Mock
}

func (m *MockHeroSliderRepository) Create(ctx context.Context, slider *model.HeroSlider) error {
	args := m.Called(ctx, slider)
	return args.Error(0)
}

func (m *MockHeroSliderRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.HeroSlider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HeroSlider), args.Error(1)
}

func (m *MockHeroSliderRepository) List(ctx context.Context, f query.Filter, opts query.Options) ([]model.HeroSlider, int64, error) {
	args := m.Called(ctx, f, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.HeroSlider), args.Get(1).(int64), args.Error(2)
}

func (m *MockHeroSliderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockObjectStore is a mock implementation of storage.ObjectStore.
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	args := m.Called(ctx, key, body, contentType)
	return args.Error(0)
}

func (m *MockObjectStore) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.String(1), args.Error(2)
}

func (m *MockObjectStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockObjectStore) Bucket() string {
	args := m.Called()
	return args.String(0)
}
