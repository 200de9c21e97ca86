package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is an open string enum. The constants below name the statuses
// the system knows about, but any string is accepted on status updates; no
// transition rules are enforced.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// Order is an append-only purchase-intent record. Only Status is ever
// mutated after creation; orders are never deleted.
type Order struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	BuyerName   string
	BuyerID     uuid.UUID // GeneratedID of the buying user.
	Location    string
	Status      OrderStatus
	CreatedAt   time.Time
}
