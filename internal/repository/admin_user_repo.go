package repository

import (
	"context"

	"gorm.io/gorm"

	"photosite/internal/domain"
)

type AdminUserRepository struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

func (r *AdminUserRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	var u domain.AdminUser
	tx := r.db.WithContext(ctx).First(&u, "email = ?", email)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *AdminUserRepository) Create(ctx context.Context, u *domain.AdminUser) error {
	return r.db.WithContext(ctx).Create(u).Error
}
