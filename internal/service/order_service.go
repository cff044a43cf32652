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

type OrderItemInput struct {
	ProductName string `json:"product_name"`
	CostPrice   string `json:"cost_price"` // Decimal string; garbage coerces to 0
	Quantity    int    `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest mirrors the checkout-provider payload shape: status and
// payment method stay free text and are only decoded at the finance boundary.
type CreateOrderRequest struct {
	ExternalRef   string           `json:"external_ref"`
	Status        string           `json:"status"`
	Total         string           `json:"total" binding:"required"`
	PaymentMethod *string          `json:"payment_method"`
	Items         []OrderItemInput `json:"items"`
}

// --- Interface ---

type OrderService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req CreateOrderRequest) (*model.Order, error)
	GetOrder(ctx context.Context, userID uuid.UUID, id string) (*model.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID, page, limit int) ([]model.Order, int64, error)
}

type orderService struct {
	repo  repository.OrderRepository
	audit repository.AuditRepository
	hub   *websocket.Hub
}

func NewOrderService(repo repository.OrderRepository, audit repository.AuditRepository, hub *websocket.Hub) OrderService {
	return &orderService{repo: repo, audit: audit, hub: hub}
}

// --- Implementation ---

func (s *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, req CreateOrderRequest) (*model.Order, error) {
	order := model.Order{
		UserID:        userID,
		ExternalRef:   req.ExternalRef,
		Status:        req.Status,
		Total:         safenum.Decimal(req.Total),
		PaymentMethod: req.PaymentMethod,
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, model.OrderItem{
			ProductName: item.ProductName,
			CostPrice:   safenum.Decimal(item.CostPrice),
			Quantity:    item.Quantity,
		})
	}

	if err := s.repo.Create(ctx, &order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	writeAudit(ctx, s.audit, userID, model.ActionCreateOrder, order.ID.String(), order.ExternalRef, req)
	s.hub.NotifyDataChanged("orders.changed", userID.String())

	return &order, nil
}

func (s *orderService) GetOrder(ctx context.Context, userID uuid.UUID, id string) (*model.Order, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid order id: %w", err)
	}

	order, err := s.repo.FindByIDWithItems(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID, page, limit int) ([]model.Order, int64, error) {
	orders, total, err := s.repo.List(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, total, nil
}
