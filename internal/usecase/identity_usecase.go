// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"afritrade/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterClientInput defines the data required to register a new client.
type RegisterClientInput struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Location     string `json:"location" validate:"required"`
	BusinessType string `json:"business_type" validate:"required"` // SME, exporter, manufacturer
	TradeFocus   string `json:"trade_focus" validate:"required"`
	Password     string `json:"password" validate:"required,min=8"`
}

// RegisterSupplierInput defines the data required to register a new supplier.
type RegisterSupplierInput struct {
	Name              string   `json:"name" validate:"required"`
	Email             string   `json:"email" validate:"required,email"`
	CompanyName       string   `json:"company_name" validate:"required"`
	Location          string   `json:"location" validate:"required"`
	ProductCategories []string `json:"product_categories" validate:"required"`
	Capacity          int      `json:"capacity" validate:"gte=0"`
	Password          string   `json:"password" validate:"required,min=8"`
}

// RegisterTransporterInput defines the data required to register a new transporter.
type RegisterTransporterInput struct {
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	Location       string   `json:"location" validate:"required"`
	TransportModes []string `json:"transport_modes" validate:"required"` // road, air, sea
	RegionsCovered []string `json:"regions_covered" validate:"required"`
	Password       string   `json:"password" validate:"required,min=8"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the generated id of the newly created account.
type RegisterOutput struct {
	Role        entity.Role `json:"role"`
	GeneratedID uuid.UUID   `json:"user_id"`
}

// LoginOutput reports which role collection matched the credentials.
// No token or session is issued; the role itself is the result.
type LoginOutput struct {
	Role        entity.Role `json:"role"`
	GeneratedID uuid.UUID   `json:"user_id"`
}

// IdentityUsecase defines the interface for registration and authentication.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type IdentityUsecase interface {
	RegisterClient(ctx context.Context, input *RegisterClientInput) (*RegisterOutput, error)
	RegisterSupplier(ctx context.Context, input *RegisterSupplierInput) (*RegisterOutput, error)
	RegisterTransporter(ctx context.Context, input *RegisterTransporterInput) (*RegisterOutput, error)

	// Login scans the role collections in the fixed order and reports the
	// first role whose stored credentials match.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetUserByID resolves a generated id to a user across all role
	// collections, in the same fixed order.
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
