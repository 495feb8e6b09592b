package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"regadmin/internal/model"
	"regadmin/internal/query"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByIDWithRoles(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByIDPopulated(ctx context.Context, id uuid.UUID, populate []string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context, f query.Filter, opts query.Options, joinIdentifications bool) ([]model.User, int64, error)
	Update(ctx context.Context, user *model.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	ReplaceRoles(ctx context.Context, user *model.User, roles []model.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
	// CreateWithInfo inserts the profile and the user referencing it inside
	// one transaction, so a failed user insert cannot orphan the profile.
	CreateWithInfo(ctx context.Context, user *model.User, info *model.UserInfo) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// userPreloads maps request populate names to GORM relations.
var userPreloads = map[string]string{
	"roleId":     "Roles",
	"roles":      "Roles",
	"branchId":   "Branch",
	"branch":     "Branch",
	"userInfoId": "UserInfo",
	"userInfo":   "UserInfo",
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDWithRoles loads a user with roles and each role's actions, as the
// authorization gate needs.
func (r *userRepository) FindByIDWithRoles(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Preload("Roles.Actions").
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByIDPopulated(ctx context.Context, id uuid.UUID, populate []string) (*model.User, error) {
	q := r.db.WithContext(ctx)
	for _, rel := range populate {
		if preload, ok := userPreloads[rel]; ok {
			q = q.Preload(preload)
			if preload == "UserInfo" {
				q = q.Preload("UserInfo.Identifications")
			}
		}
	}
	var user model.User
	if err := q.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List joins the profile table so profile-level filters (gender, search,
// identification) apply, and optionally the identifications table.
func (r *userRepository) List(ctx context.Context, f query.Filter, opts query.Options, joinIdentifications bool) ([]model.User, int64, error) {
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&model.User{}).
			Joins("LEFT JOIN user_infos ON user_infos.id = users.user_info_id")
		if joinIdentifications {
			q = q.Joins("LEFT JOIN identifications ON identifications.user_info_id = user_infos.id")
		}
		return f.Apply(q).Distinct("users.id")
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := base().Select("users.*")
	q = opts.ApplyOrder(q)
	q = opts.ApplyPage(q)
	for _, rel := range opts.Populate {
		if preload, ok := userPreloads[rel]; ok {
			q = q.Preload(preload)
			if preload == "UserInfo" {
				q = q.Preload("UserInfo.Identifications")
			}
		}
	}

	var users []model.User
	if err := q.Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("password", hash).Error
}

func (r *userRepository) ReplaceRoles(ctx context.Context, user *model.User, roles []model.Role) error {
	return r.db.WithContext(ctx).Model(user).Association("Roles").Replace(roles)
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) CreateWithInfo(ctx context.Context, user *model.User, info *model.UserInfo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(info).Error; err != nil {
			return err
		}
		user.UserInfoID = &info.ID
		return tx.Create(user).Error
	})
}
