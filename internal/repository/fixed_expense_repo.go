package repository

import (
	"context"
	"time"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FixedExpenseRepository interface {
	Create(ctx context.Context, expense *model.FixedExpense) error
	Update(ctx context.Context, expense *model.FixedExpense) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*model.FixedExpense, error)
	FindInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]model.FixedExpense, error)
	List(ctx context.Context, userID uuid.UUID, page, limit int) ([]model.FixedExpense, int64, error)
}

type fixedExpenseRepository struct {
	db *gorm.DB
}

func NewFixedExpenseRepository(db *gorm.DB) FixedExpenseRepository {
	return &fixedExpenseRepository{db: db}
}

func (r *fixedExpenseRepository) Create(ctx context.Context, expense *model.FixedExpense) error {
	return GetDB(ctx, r.db).Create(expense).Error
}

func (r *fixedExpenseRepository) Update(ctx context.Context, expense *model.FixedExpense) error {
	return GetDB(ctx, r.db).Save(expense).Error
}

func (r *fixedExpenseRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).Delete(&model.FixedExpense{}).Error
}

func (r *fixedExpenseRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*model.FixedExpense, error) {
	var expense model.FixedExpense
	if err := GetDB(ctx, r.db).First(&expense, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *fixedExpenseRepository) FindInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]model.FixedExpense, error) {
	var expenses []model.FixedExpense
	if err := GetDB(ctx, r.db).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date asc").
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *fixedExpenseRepository) List(ctx context.Context, userID uuid.UUID, page, limit int) ([]model.FixedExpense, int64, error) {
	var expenses []model.FixedExpense
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.FixedExpense{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Where("user_id = ?", userID).
		Order("date desc").Offset(offset).Limit(limit).
		Find(&expenses).Error; err != nil {
		return nil, 0, err
	}

	return expenses, total, nil
}
