package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateProductTag generates a scannable share tag for a product listing
	GenerateProductTag(productID uuid.UUID) ([]byte, error)

	// ParseProductTag parses tag data and returns the product ID
	ParseProductTag(tagData string) (uuid.UUID, error)
}
