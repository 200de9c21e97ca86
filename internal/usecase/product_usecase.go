// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"afritrade/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to list a new product.
// The image travels as raw bytes; the handler extracts them from the
// multipart upload before the usecase runs.
type CreateProductInput struct {
	Name         string
	Location     string
	SupplierName string
	Description  string
	OwnerID      uuid.UUID

	ImageData        []byte
	ImageFilename    string
	ImageContentType string
}

// UpdateProductInput defines a partial product update. Nil fields are left
// untouched; the persistence layer merges rather than overwrites.
type UpdateProductInput struct {
	Name         *string `json:"product_name,omitempty"`
	Location     *string `json:"location,omitempty"`
	SupplierName *string `json:"supplier_name,omitempty"`
	Description  *string `json:"description,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
}

// --- Output DTOs ---

// CreateProductOutput returns the generated product id and the durable URL
// of the uploaded image.
type CreateProductOutput struct {
	ProductID uuid.UUID `json:"product_id"`
	ImageURL  string    `json:"image_url"`
}

// ProductUsecase defines the interface for product listing operations.
type ProductUsecase interface {
	// Create uploads the image first and writes the document second, so a
	// document never references a nonexistent blob.
	Create(ctx context.Context, input *CreateProductInput) (*CreateProductOutput, error)

	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)

	// ListByOwner is total: no matches is a valid empty slice.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error)

	Update(ctx context.Context, id uuid.UUID, input *UpdateProductInput) error

	// Delete removes the document, then all blobs under the product's
	// storage prefix. Cleanup failure after the document delete still
	// reports success and emits an orphaned-blob event instead.
	Delete(ctx context.Context, id uuid.UUID) error
}
