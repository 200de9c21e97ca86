// Package qrcode generates scannable share tags for product listings.
package qrcode

import (
	"encoding/json"
	"fmt"

	"afritrade/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// TagData represents the QR tag data structure
type TagData struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateProductTag generates a share tag PNG for a product listing
func (s *qrcodeService) GenerateProductTag(productID uuid.UUID) ([]byte, error) {
	data := TagData{
		ProductID: productID.String(),
		Type:      "product",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tag data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseProductTag parses tag data and returns the product ID
func (s *qrcodeService) ParseProductTag(tagData string) (uuid.UUID, error) {
	var data TagData
	if err := json.Unmarshal([]byte(tagData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal tag data: %w", err)
	}

	// Validate type
	if data.Type != "product" {
		return uuid.Nil, fmt.Errorf("invalid tag type: %s", data.Type)
	}

	productID, err := uuid.Parse(data.ProductID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse product ID: %w", err)
	}

	return productID, nil
}
