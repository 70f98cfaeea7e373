package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiplogix/shipping-service/internal/entities"
	"github.com/shiplogix/shipping-service/internal/pincode"
	"github.com/shiplogix/shipping-service/internal/shipping"
	"github.com/shiplogix/shipping-service/pkg/utils"
)

type OrderRepo interface {
	InsertOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	DeleteOrder(ctx context.Context, id int64) (bool, error)
}

type PincodeVerifier interface {
	Verify(ctx context.Context, pincode string) bool
}

type EventPublisher interface {
	OrderCreated(ctx context.Context, order entities.Order) error
	OrderDeleted(ctx context.Context, orderID int64) error
}

type CreateOrderInput struct {
	CustomerID        int64
	ShippingAddress   string
	ConsignmentWeight float64
}

type OrderService struct {
	logger   *slog.Logger
	repo     OrderRepo
	verifier PincodeVerifier
	events   EventPublisher
}

func NewOrderService(logger *slog.Logger, repo OrderRepo, verifier PincodeVerifier, events EventPublisher) *OrderService {
	return &OrderService{
		logger:   logger.With(slog.String("service", "order")),
		repo:     repo,
		verifier: verifier,
		events:   events,
	}
}

var readRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  3,
	Multiplier:   2,
}

// CreateOrder validates the request, derives pincode and shipping cost,
// and persists the order. Validation order: address format, pincode
// existence, weight.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	pin, ok := pincode.ExtractFromAddress(in.ShippingAddress)
	if !ok {
		return entities.Order{}, entities.ErrMalformedAddress
	}

	if !s.verifier.Verify(ctx, pin) {
		return entities.Order{}, entities.ErrInvalidPincode
	}

	if in.ConsignmentWeight <= 0 {
		return entities.Order{}, entities.ErrInvalidWeight
	}

	order, err := s.repo.InsertOrder(ctx, entities.Order{
		CustomerID:        in.CustomerID,
		ShippingAddress:   in.ShippingAddress,
		Pincode:           pin,
		ConsignmentWeight: in.ConsignmentWeight,
		ShippingCost:      shipping.Cost(in.ConsignmentWeight),
		Status:            entities.StatusPending,
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.events.OrderCreated(ctx, order); err != nil {
		s.logger.Error("failed to publish order created", slog.Int64("order_id", order.ID), slog.Any("error", err))
	}

	s.logger.Debug("order created", slog.Int64("order_id", order.ID))
	return order, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, id)
		return err
	}
	if err := utils.Retry(readRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order
	fn := func() error {
		var err error
		orders, err = s.repo.ListOrders(ctx)
		return err
	}
	if err := utils.Retry(readRetry, fn); err != nil {
		return nil, err
	}
	return orders, nil
}

// DeleteOrder removes an order permanently. Deleting an id that never
// existed (or was already deleted) is a not-found error.
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteOrder(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if !deleted {
		return entities.ErrOrderNotFound
	}

	if err := s.events.OrderDeleted(ctx, id); err != nil {
		s.logger.Error("failed to publish order deleted", slog.Int64("order_id", id), slog.Any("error", err))
	}

	s.logger.Debug("order deleted", slog.Int64("order_id", id))
	return nil
}
