package repository

import (
	"context"

	"gorm.io/gorm"

	"photosite/internal/domain"
)

type CollectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

func (r *CollectionRepository) Create(ctx context.Context, c *domain.Collection) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CollectionRepository) All(ctx context.Context) ([]domain.Collection, error) {
	var out []domain.Collection
	tx := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at DESC").
		Find(&out)
	return out, tx.Error
}

func (r *CollectionRepository) GetBySlug(ctx context.Context, slug string) (*domain.Collection, error) {
	var c domain.Collection
	tx := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("deleted_at IS NULL").
		First(&c, "slug = ?", slug)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *CollectionRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Model(&domain.Collection{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", gorm.Expr("CURRENT_TIMESTAMP"))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
