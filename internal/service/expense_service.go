package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/websocket"
	"backend/pkg/safenum"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateFixedExpenseRequest struct {
	Description string `json:"description" binding:"required"`
	Category    string `json:"category"`
	Amount      string `json:"amount" binding:"required"` // Decimal string
	Date        string `json:"date" binding:"required"`   // YYYY-MM-DD
}

type UpdateFixedExpenseRequest struct {
	Description string `json:"description" binding:"required"`
	Category    string `json:"category"`
	Amount      string `json:"amount" binding:"required"`
	Date        string `json:"date" binding:"required"`
}

type FixedExpenseResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	CreatedAt   string `json:"created_at"`
}

// --- Interface ---

type FixedExpenseService interface {
	ListExpenses(ctx context.Context, userID uuid.UUID, page, limit int) ([]FixedExpenseResponse, int64, error)
	CreateExpense(ctx context.Context, userID uuid.UUID, req CreateFixedExpenseRequest) (FixedExpenseResponse, error)
	UpdateExpense(ctx context.Context, userID uuid.UUID, id string, req UpdateFixedExpenseRequest) (FixedExpenseResponse, error)
	DeleteExpense(ctx context.Context, userID uuid.UUID, id string) error
}

type fixedExpenseService struct {
	repo  repository.FixedExpenseRepository
	audit repository.AuditRepository
	hub   *websocket.Hub
}

func NewFixedExpenseService(repo repository.FixedExpenseRepository, audit repository.AuditRepository, hub *websocket.Hub) FixedExpenseService {
	return &fixedExpenseService{repo: repo, audit: audit, hub: hub}
}

// --- Implementation ---

func (s *fixedExpenseService) ListExpenses(ctx context.Context, userID uuid.UUID, page, limit int) ([]FixedExpenseResponse, int64, error) {
	expenses, total, err := s.repo.List(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch fixed expenses: %w", err)
	}

	res := make([]FixedExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		res = append(res, toFixedExpenseResponse(expense))
	}
	return res, total, nil
}

func (s *fixedExpenseService) CreateExpense(ctx context.Context, userID uuid.UUID, req CreateFixedExpenseRequest) (FixedExpenseResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return FixedExpenseResponse{}, fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}

	expense := model.FixedExpense{
		UserID:      userID,
		Description: req.Description,
		Category:    req.Category,
		Amount:      safenum.Decimal(req.Amount),
		Date:        date,
	}

	if err := s.repo.Create(ctx, &expense); err != nil {
		return FixedExpenseResponse{}, fmt.Errorf("failed to create fixed expense: %w", err)
	}

	writeAudit(ctx, s.audit, userID, model.ActionCreateFixedExpense, expense.ID.String(), expense.Description, req)
	s.hub.NotifyDataChanged("expenses.changed", userID.String())

	return toFixedExpenseResponse(expense), nil
}

func (s *fixedExpenseService) UpdateExpense(ctx context.Context, userID uuid.UUID, id string, req UpdateFixedExpenseRequest) (FixedExpenseResponse, error) {
	expenseID, err := uuid.Parse(id)
	if err != nil {
		return FixedExpenseResponse{}, fmt.Errorf("invalid expense id: %w", err)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return FixedExpenseResponse{}, fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}

	expense, err := s.repo.FindByID(ctx, userID, expenseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FixedExpenseResponse{}, fmt.Errorf("fixed expense not found")
		}
		return FixedExpenseResponse{}, fmt.Errorf("failed to fetch fixed expense: %w", err)
	}

	expense.Description = req.Description
	expense.Category = req.Category
	expense.Amount = safenum.Decimal(req.Amount)
	expense.Date = date

	if err := s.repo.Update(ctx, expense); err != nil {
		return FixedExpenseResponse{}, fmt.Errorf("failed to update fixed expense: %w", err)
	}

	writeAudit(ctx, s.audit, userID, model.ActionUpdateFixedExpense, expense.ID.String(), expense.Description, req)
	s.hub.NotifyDataChanged("expenses.changed", userID.String())

	return toFixedExpenseResponse(*expense), nil
}

func (s *fixedExpenseService) DeleteExpense(ctx context.Context, userID uuid.UUID, id string) error {
	expenseID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid expense id: %w", err)
	}

	expense, err := s.repo.FindByID(ctx, userID, expenseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("fixed expense not found")
		}
		return fmt.Errorf("failed to fetch fixed expense: %w", err)
	}

	if err := s.repo.Delete(ctx, userID, expenseID); err != nil {
		return fmt.Errorf("failed to delete fixed expense: %w", err)
	}

	writeAudit(ctx, s.audit, userID, model.ActionDeleteFixedExpense, id, expense.Description, map[string]string{"deleted_id": id})
	s.hub.NotifyDataChanged("expenses.changed", userID.String())

	return nil
}

func toFixedExpenseResponse(expense model.FixedExpense) FixedExpenseResponse {
	return FixedExpenseResponse{
		ID:          expense.ID.String(),
		Description: expense.Description,
		Category:    expense.Category,
		Amount:      expense.Amount.StringFixed(2),
		Date:        expense.Date.Format("2006-01-02"),
		CreatedAt:   expense.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
