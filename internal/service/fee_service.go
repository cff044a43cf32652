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

type CreateFeeRequest struct {
	Name            string   `json:"name" binding:"required"`
	Type            string   `json:"type" binding:"required,oneof=PERCENTAGE FIXED"`
	Value           string   `json:"value" binding:"required"` // Decimal string, e.g. "4.99"
	CalculationRule string   `json:"calculation_rule" binding:"omitempty,oneof=faturamento venda"`
	PaymentMethods  []string `json:"payment_methods" binding:"omitempty,dive,oneof=pix boleto card"`
}

type UpdateFeeRequest struct {
	Name            string   `json:"name" binding:"required"`
	Type            string   `json:"type" binding:"required,oneof=PERCENTAGE FIXED"`
	Value           string   `json:"value" binding:"required"`
	CalculationRule string   `json:"calculation_rule" binding:"omitempty,oneof=faturamento venda"`
	PaymentMethods  []string `json:"payment_methods" binding:"omitempty,dive,oneof=pix boleto card"`
}

type FeeResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Value           string   `json:"value"`
	CalculationRule *string  `json:"calculation_rule"`
	PaymentMethods  []string `json:"payment_methods"`
	CreatedAt       string   `json:"created_at"`
}

// --- Interface ---

type FeeService interface {
	// ListFees returns the merchant's fees, optionally narrowed to those
	// configured for a payment method ("pix", "boleto", "card").
	ListFees(ctx context.Context, userID uuid.UUID, method string) ([]FeeResponse, error)
	CreateFee(ctx context.Context, userID uuid.UUID, req CreateFeeRequest) (FeeResponse, error)
	UpdateFee(ctx context.Context, userID uuid.UUID, id string, req UpdateFeeRequest) (FeeResponse, error)
	DeleteFee(ctx context.Context, userID uuid.UUID, id string) error
}

type feeService struct {
	repo  repository.FeeRepository
	audit repository.AuditRepository
	hub   *websocket.Hub
}

func NewFeeService(repo repository.FeeRepository, audit repository.AuditRepository, hub *websocket.Hub) FeeService {
	return &feeService{repo: repo, audit: audit, hub: hub}
}

// --- Implementation ---

func (s *feeService) ListFees(ctx context.Context, userID uuid.UUID, method string) ([]FeeResponse, error) {
	fees, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fees: %w", err)
	}

	res := make([]FeeResponse, 0, len(fees))
	for _, fee := range fees {
		if method != "" && !fee.AppliesTo(method) {
			continue
		}
		res = append(res, toFeeResponse(fee))
	}
	return res, nil
}

func (s *feeService) CreateFee(ctx context.Context, userID uuid.UUID, req CreateFeeRequest) (FeeResponse, error) {
	fee := model.Fee{
		UserID:         userID,
		Name:           req.Name,
		Type:           req.Type,
		Value:          safenum.Decimal(req.Value),
		PaymentMethods: req.PaymentMethods,
	}
	if req.CalculationRule != "" {
		rule := req.CalculationRule
		fee.CalculationRule = &rule
	}

	if err := s.repo.Create(ctx, &fee); err != nil {
		return FeeResponse{}, fmt.Errorf("failed to create fee: %w", err)
	}

	writeAudit(ctx, s.audit, userID, model.ActionCreateFee, fee.ID.String(), fee.Name, req)
	s.hub.NotifyDataChanged("fees.changed", userID.String())

	return toFeeResponse(fee), nil
}

func (s *feeService) UpdateFee(ctx context.Context, userID uuid.UUID, id string, req UpdateFeeRequest) (FeeResponse, error) {
	feeID, err := uuid.Parse(id)
	if err != nil {
		return FeeResponse{}, fmt.Errorf("invalid fee id: %w", err)
	}

	fee, err := s.repo.FindByID(ctx, userID, feeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FeeResponse{}, fmt.Errorf("fee not found")
		}
		return FeeResponse{}, fmt.Errorf("failed to fetch fee: %w", err)
	}

	fee.Name = req.Name
	fee.Type = req.Type
	fee.Value = safenum.Decimal(req.Value)
	fee.PaymentMethods = req.PaymentMethods
	fee.CalculationRule = nil
	if req.CalculationRule != "" {
		rule := req.CalculationRule
		fee.CalculationRule = &rule
	}

	if err := s.repo.Update(ctx, fee); err != nil {
		return FeeResponse{}, fmt.Errorf("failed to update fee: %w", err)
	}

	writeAudit(ctx, s.audit, userID, model.ActionUpdateFee, fee.ID.String(), fee.Name, req)
	s.hub.NotifyDataChanged("fees.changed", userID.String())

	return toFeeResponse(*fee), nil
}

func (s *feeService) DeleteFee(ctx context.Context, userID uuid.UUID, id string) error {
	feeID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid fee id: %w", err)
	}

	fee, err := s.repo.FindByID(ctx, userID, feeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("fee not found")
		}
		return fmt.Errorf("failed to fetch fee: %w", err)
	}

	if err := s.repo.Delete(ctx, userID, feeID); err != nil {
		return fmt.Errorf("failed to delete fee: %w", err)
	}

	writeAudit(ctx, s.audit, userID, model.ActionDeleteFee, id, fee.Name, map[string]string{"deleted_id": id})
	s.hub.NotifyDataChanged("fees.changed", userID.String())

	return nil
}

func toFeeResponse(fee model.Fee) FeeResponse {
	methods := fee.PaymentMethods
	if methods == nil {
		methods = []string{}
	}
	return FeeResponse{
		ID:              fee.ID.String(),
		Name:            fee.Name,
		Type:            fee.Type,
		Value:           fee.Value.StringFixed(2),
		CalculationRule: fee.CalculationRule,
		PaymentMethods:  methods,
		CreatedAt:       fee.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
