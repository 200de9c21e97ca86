package repository

import (
	"context"
	"errors"

	"afritrade/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no product document exists at the key.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the document-store operations for products.
// Listing operations are total: an empty result is a valid empty slice,
// never an error.
type ProductRepository interface {
	// Create writes the product document at its id.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID fetches a product by its document key.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListAll returns every product document.
	ListAll(ctx context.Context) ([]*entity.Product, error)

	// ListByOwner returns products whose owner field equals ownerID.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error)

	// Update applies a merge of the supplied fields only. Absent document
	// keys yield ErrProductNotFound; fields not carried by the update are
	// left untouched.
	Update(ctx context.Context, id uuid.UUID, update *entity.ProductUpdate) error

	// Delete removes the product document. Returns ErrProductNotFound when
	// the document does not exist; blob cleanup is the caller's concern.
	Delete(ctx context.Context, id uuid.UUID) error
}
