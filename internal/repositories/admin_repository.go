package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gymgate/internal/models/db_models"
)

type AdminRepository interface {
	Insert(ctx context.Context, admin *db_models.Admin) error
	FindByEmail(ctx context.Context, email string) (*db_models.Admin, error)
	Count(ctx context.Context) (int64, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{
		db: db,
	}
}

func (a *adminRepository) Insert(ctx context.Context, admin *db_models.Admin) error {
	return a.db.WithContext(ctx).Create(admin).Error
}

func (a *adminRepository) FindByEmail(ctx context.Context, email string) (*db_models.Admin, error) {
	var admin db_models.Admin
	err := a.db.WithContext(ctx).First(&admin, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &admin, nil
}

func (a *adminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := a.db.WithContext(ctx).Model(&db_models.Admin{}).Count(&count).Error
	return count, err
}
