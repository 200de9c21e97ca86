package repository

import (
	"context"
	"errors"

	"afritrade/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when no order document exists at the key.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the document-store operations for the order ledger.
// Orders are append-only: created once, status mutated in place, never deleted.
type OrderRepository interface {
	// Create writes the order document at its id.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID fetches an order by its document key.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByBuyer returns orders whose buyer field equals buyerID.
	// An empty result is a valid empty slice.
	ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus overwrites only the status field. Returns ErrOrderNotFound
	// when the document does not exist. No transition rules are enforced.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
