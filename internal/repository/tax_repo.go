package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TaxRepository interface {
	Create(ctx context.Context, tax *model.Tax) error
	Update(ctx context.Context, tax *model.Tax) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Tax, error)
	// FindByUser is a pure read: system-row provisioning happens at
	// registration via EnsureAdSpendTax, never inside this call.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Tax, error)
	// EnsureAdSpendTax idempotently provisions the single system "Ad Spend"
	// tax row for a user. Safe to call repeatedly.
	EnsureAdSpendTax(ctx context.Context, userID uuid.UUID) error
}

type taxRepository struct {
	db *gorm.DB
}

func NewTaxRepository(db *gorm.DB) TaxRepository {
	return &taxRepository{db: db}
}

func (r *taxRepository) Create(ctx context.Context, tax *model.Tax) error {
	return GetDB(ctx, r.db).Create(tax).Error
}

func (r *taxRepository) Update(ctx context.Context, tax *model.Tax) error {
	return GetDB(ctx, r.db).Save(tax).Error
}

func (r *taxRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return GetDB(ctx, r.db).
		Where("id = ? AND user_id = ? AND is_system = false", id, userID).
		Delete(&model.Tax{}).Error
}

func (r *taxRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Tax, error) {
	var tax model.Tax
	if err := GetDB(ctx, r.db).First(&tax, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	return &tax, nil
}

func (r *taxRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Tax, error) {
	var taxes []model.Tax
	if err := GetDB(ctx, r.db).Where("user_id = ?", userID).Order("created_at asc").Find(&taxes).Error; err != nil {
		return nil, err
	}
	return taxes, nil
}

func (r *taxRepository) EnsureAdSpendTax(ctx context.Context, userID uuid.UUID) error {
	db := GetDB(ctx, r.db)

	var count int64
	if err := db.Model(&model.Tax{}).
		Where("user_id = ? AND is_system = true", userID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rule := model.TaxRuleAdSpend
	return db.Create(&model.Tax{
		UserID:          userID,
		Name:            model.AdSpendTaxName,
		Rate:            decimal.Zero,
		CalculationRule: &rule,
		IsSystem:        true,
	}).Error
}
