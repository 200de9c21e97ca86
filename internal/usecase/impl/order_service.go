package impl

import (
	"context"
	"log/slog"
	"time"

	"afritrade/internal/domain/entity"
	domainerrors "afritrade/internal/domain/errors"
	"afritrade/internal/domain/repository"
	"afritrade/internal/domain/service"
	"afritrade/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	events    service.EventPublisher
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	events service.EventPublisher,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		events:    events,
		logger:    logger,
	}
}

// Place records a purchase intent with the caller-supplied status.
func (srv *orderService) Place(ctx context.Context, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	order := &entity.Order{
		ID:          uuid.New(),
		ProductID:   input.ProductID,
		ProductName: input.ProductName,
		BuyerName:   input.BuyerName,
		BuyerID:     input.BuyerID,
		Location:    input.Location,
		Status:      entity.OrderStatus(input.Status),
		CreatedAt:   time.Now().UTC(),
	}

	srv.logger.Info("Placing order",
		slog.String("order_id", order.ID.String()),
		slog.String("buyer_id", order.BuyerID.String()),
	)

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		srv.logger.Error("Failed to persist order", "error", err)

		return nil, domainerrors.ErrPersistenceFailed.WithDetails(err.Error())
	}

	srv.publish(ctx, service.EventOrderPlaced, order.ID, map[string]string{
		"buyer_id":   order.BuyerID.String(),
		"product_id": order.ProductID.String(),
	})

	return &usecase.PlaceOrderOutput{OrderID: order.ID}, nil
}

// Get fetches one order by id.
func (srv *orderService) Get(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order lookup failed")
		}

		return nil, errors.Wrap(err, "failed to fetch order")
	}

	return order, nil
}

// ListByBuyer returns the buyer's orders; no matches is an empty slice.
func (srv *orderService) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by buyer")
	}

	return orders, nil
}

// UpdateStatus overwrites only the status field. The status is an open string
// enum; no transition rules are enforced.
func (srv *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	if err := srv.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound.WrapMessage("order status update failed")
		}

		return errors.Wrap(err, "failed to update order status")
	}

	srv.publish(ctx, service.EventOrderStatusChanged, id, map[string]string{
		"status": status.String(),
	})

	return nil
}

// publish emits a domain event best effort; publishing never fails the
// operation that triggered it.
func (srv *orderService) publish(ctx context.Context, eventType string, subject uuid.UUID, attrs map[string]string) {
	event := &service.DomainEvent{
		EventID:    uuid.New().String(),
		Type:       eventType,
		Subject:    subject.String(),
		Attributes: attrs,
	}

	if err := srv.events.PublishEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish event", "error", err, "event_type", eventType)
	}
}
