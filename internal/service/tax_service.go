package service

import (
	"context"
	"errors"
	"fmt"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/websocket"
	"backend/pkg/safenum"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateTaxRequest struct {
	Name            string `json:"name" binding:"required"`
	Rate            string `json:"rate" binding:"required"` // Percent as decimal string, e.g. "8.5"
	CalculationRule string `json:"calculation_rule" binding:"omitempty,oneof=faturamento comissao"`
}

type UpdateTaxRequest struct {
	Name            string `json:"name" binding:"required"`
	Rate            string `json:"rate" binding:"required"`
	CalculationRule string `json:"calculation_rule" binding:"omitempty,oneof=faturamento comissao"`
}

type TaxResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Rate            string  `json:"rate"`
	CalculationRule *string `json:"calculation_rule"`
	IsSystem        bool    `json:"is_system"`
	CreatedAt       string  `json:"created_at"`
}

// --- Interface ---

type TaxService interface {
	ListTaxes(ctx context.Context, userID uuid.UUID) ([]TaxResponse, error)
	CreateTax(ctx context.Context, userID uuid.UUID, req CreateTaxRequest) (TaxResponse, error)
	UpdateTax(ctx context.Context, userID uuid.UUID, id string, req UpdateTaxRequest) (TaxResponse, error)
	DeleteTax(ctx context.Context, userID uuid.UUID, id string) error
}

type taxService struct {
	repo  repository.TaxRepository
	audit repository.AuditRepository
	hub   *websocket.Hub
}

func NewTaxService(repo repository.TaxRepository, audit repository.AuditRepository, hub *websocket.Hub) TaxService {
	return &taxService{repo: repo, audit: audit, hub: hub}
}

// --- Implementation ---

func (s *taxService) ListTaxes(ctx context.Context, userID uuid.UUID) ([]TaxResponse, error) {
	taxes, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch taxes: %w", err)
	}

	res := make([]TaxResponse, 0, len(taxes))
	for _, tax := range taxes {
		res = append(res, toTaxResponse(tax))
	}
	return res, nil
}

func (s *taxService) CreateTax(ctx context.Context, userID uuid.UUID, req CreateTaxRequest) (TaxResponse, error) {
	tax := model.Tax{
		UserID: userID,
		Name:   req.Name,
		Rate:   safenum.Decimal(req.Rate),
	}
	if req.CalculationRule != "" {
		rule := req.CalculationRule
		tax.CalculationRule = &rule
	}

	if err := s.repo.Create(ctx, &tax); err != nil {
		return TaxResponse{}, fmt.Errorf("failed to create tax: %w", err)
	}

	writeAudit(ctx, s.audit, userID, model.ActionCreateTax, tax.ID.String(), tax.Name, req)
	s.hub.NotifyDataChanged("taxes.changed", userID.String())

	return toTaxResponse(tax), nil
}

func (s *taxService) UpdateTax(ctx context.Context, userID uuid.UUID, id string, req UpdateTaxRequest) (TaxResponse, error) {
	taxID, err := uuid.Parse(id)
	if err != nil {
		return TaxResponse{}, fmt.Errorf("invalid tax id: %w", err)
	}

	tax, err := s.repo.FindByID(ctx, userID, taxID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaxResponse{}, fmt.Errorf("tax not found")
		}
		return TaxResponse{}, fmt.Errorf("failed to fetch tax: %w", err)
	}

	// The system Ad Spend row is managed by provisioning, not by merchants
	if tax.IsSystem {
		return TaxResponse{}, fmt.Errorf("system tax cannot be modified")
	}

	tax.Name = req.Name
	tax.Rate = safenum.Decimal(req.Rate)
	tax.CalculationRule = nil
	if req.CalculationRule != "" {
		rule := req.CalculationRule
		tax.CalculationRule = &rule
	}

	if err := s.repo.Update(ctx, tax); err != nil {
		return TaxResponse{}, fmt.Errorf("failed to update tax: %w", err)
	}

	writeAudit(ctx, s.audit, userID, model.ActionUpdateTax, tax.ID.String(), tax.Name, req)
	s.hub.NotifyDataChanged("taxes.changed", userID.String())

	return toTaxResponse(*tax), nil
}

func (s *taxService) DeleteTax(ctx context.Context, userID uuid.UUID, id string) error {
	taxID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid tax id: %w", err)
	}

	tax, err := s.repo.FindByID(ctx, userID, taxID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("tax not found")
		}
		return fmt.Errorf("failed to fetch tax: %w", err)
	}

	if tax.IsSystem {
		return fmt.Errorf("system tax cannot be deleted")
	}

	if err := s.repo.Delete(ctx, userID, taxID); err != nil {
		return fmt.Errorf("failed to delete tax: %w", err)
	}

	writeAudit(ctx, s.audit, userID, model.ActionDeleteTax, id, tax.Name, map[string]string{"deleted_id": id})
	s.hub.NotifyDataChanged("taxes.changed", userID.String())

	return nil
}

func toTaxResponse(tax model.Tax) TaxResponse {
	return TaxResponse{
		ID:              tax.ID.String(),
		Name:            tax.Name,
		Rate:            tax.Rate.StringFixed(2),
		CalculationRule: tax.CalculationRule,
		IsSystem:        tax.IsSystem,
		CreatedAt:       tax.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
