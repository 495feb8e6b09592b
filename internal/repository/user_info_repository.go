package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"regadmin/internal/model"
	"regadmin/internal/query"
)

// UserInfoRepository defines profile persistence operations.
type UserInfoRepository interface {
	Create(ctx context.Context, info *model.UserInfo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.UserInfo, error)
	FindByEmail(ctx context.Context, email string) (*model.UserInfo, error)
	List(ctx context.Context, f query.Filter, opts query.Options, joinIdentifications bool) ([]model.UserInfo, int64, error)
	Update(ctx context.Context, info *model.UserInfo) error
	ReplaceIdentifications(ctx context.Context, info *model.UserInfo, idents []model.Identification) error
	// IdentificationOwner returns the profile id currently holding the pair,
	// or uuid.Nil when the pair is free.
	IdentificationOwner(ctx context.Context, cardType, cardCode string) (uuid.UUID, error)
}

type userInfoRepository struct {
	db *gorm.DB
}

// NewUserInfoRepository builds a GORM-backed profile repository.
func NewUserInfoRepository(db *gorm.DB) UserInfoRepository {
	return &userInfoRepository{db: db}
}

func (r *userInfoRepository) Create(ctx context.Context, info *model.UserInfo) error {
	return r.db.WithContext(ctx).Create(info).Error
}

func (r *userInfoRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UserInfo, error) {
	var info model.UserInfo
	err := r.db.WithContext(ctx).
		Preload("Identifications").
		Where("id = ?", id).
		First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *userInfoRepository) FindByEmail(ctx context.Context, email string) (*model.UserInfo, error) {
	var info model.UserInfo
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *userInfoRepository) List(ctx context.Context, f query.Filter, opts query.Options, joinIdentifications bool) ([]model.UserInfo, int64, error) {
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&model.UserInfo{})
		if joinIdentifications {
			q = q.Joins("LEFT JOIN identifications ON identifications.user_info_id = user_infos.id")
		}
		return f.Apply(q).Distinct("user_infos.id")
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := base().Select("user_infos.*")
	q = opts.ApplySelect(q)
	q = opts.ApplyOrder(q)
	q = opts.ApplyPage(q)
	q = q.Preload("Identifications")

	var infos []model.UserInfo
	if err := q.Find(&infos).Error; err != nil {
		return nil, 0, err
	}
	return infos, total, nil
}

func (r *userInfoRepository) Update(ctx context.Context, info *model.UserInfo) error {
	return r.db.WithContext(ctx).Save(info).Error
}

func (r *userInfoRepository) ReplaceIdentifications(ctx context.Context, info *model.UserInfo, idents []model.Identification) error {
	return r.db.WithContext(ctx).Model(info).Association("Identifications").Replace(idents)
}

func (r *userInfoRepository) IdentificationOwner(ctx context.Context, cardType, cardCode string) (uuid.UUID, error) {
	var ident model.Identification
	err := r.db.WithContext(ctx).
		Where("card_type = ? AND card_code = ?", cardType, cardCode).
		First(&ident).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}
	return ident.UserInfoID, nil
}
