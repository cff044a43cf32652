package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeeRepository interface {
	Create(ctx context.Context, fee *model.Fee) error
	Update(ctx context.Context, fee *model.Fee) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Fee, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Fee, error)
}

type feeRepository struct {
	db *gorm.DB
}

func NewFeeRepository(db *gorm.DB) FeeRepository {
	return &feeRepository{db: db}
}

func (r *feeRepository) Create(ctx context.Context, fee *model.Fee) error {
	return GetDB(ctx, r.db).Create(fee).Error
}

func (r *feeRepository) Update(ctx context.Context, fee *model.Fee) error {
	return GetDB(ctx, r.db).Save(fee).Error
}

func (r *feeRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Fee{}).Error
}

func (r *feeRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Fee, error) {
	var fee model.Fee
	if err := GetDB(ctx, r.db).First(&fee, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	return &fee, nil
}

func (r *feeRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Fee, error) {
	var fees []model.Fee
	if err := GetDB(ctx, r.db).Where("user_id = ?", userID).Order("created_at asc").Find(&fees).Error; err != nil {
		return nil, err
	}
	return fees, nil
}
