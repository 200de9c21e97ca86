package model

import (
	"time"

	"afritrade/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderDocument mirrors one document in the orders collection, keyed by the
// generated order id.
type OrderDocument struct {
	ProductID   string    `firestore:"productId"`
	ProductName string    `firestore:"productName"`
	BuyerName   string    `firestore:"buyerName"`
	BuyerID     string    `firestore:"buyerId"`
	Location    string    `firestore:"location"`
	Status      string    `firestore:"status"`
	CreatedAt   time.Time `firestore:"createdAt"`
}

// Field names used by equality queries and the status update.
const (
	BuyerIDField = "buyerId"
	StatusField  = "status"
)

// OrderDocumentFromEntity flattens an order entity into its document shape.
func OrderDocumentFromEntity(order *entity.Order) *OrderDocument {
	return &OrderDocument{
		ProductID:   order.ProductID.String(),
		ProductName: order.ProductName,
		BuyerName:   order.BuyerName,
		BuyerID:     order.BuyerID.String(),
		Location:    order.Location,
		Status:      order.Status.String(),
		CreatedAt:   order.CreatedAt,
	}
}

// ToEntity rebuilds the order entity from its document and key.
func (d *OrderDocument) ToEntity(id uuid.UUID) (*entity.Order, error) {
	productID, err := uuid.Parse(d.ProductID)
	if err != nil {
		return nil, err
	}
	buyerID, err := uuid.Parse(d.BuyerID)
	if err != nil {
		return nil, err
	}

	return &entity.Order{
		ID:          id,
		ProductID:   productID,
		ProductName: d.ProductName,
		BuyerName:   d.BuyerName,
		BuyerID:     buyerID,
		Location:    d.Location,
		Status:      entity.OrderStatus(d.Status),
		CreatedAt:   d.CreatedAt,
	}, nil
}
