package model

import (
	"time"

	"afritrade/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductDocument mirrors one document in the products collection, keyed by
// the generated product id.
type ProductDocument struct {
	ProductName  string    `firestore:"productName"`
	Location     string    `firestore:"location"`
	SupplierName string    `firestore:"supplierName"`
	Description  string    `firestore:"description"`
	ImageURL     string    `firestore:"imageUrl"`
	UserID       string    `firestore:"userId"` // GeneratedID of the owner.
	CreatedAt    time.Time `firestore:"createdAt"`
}

// Field names used by equality queries and partial updates.
const (
	ProductNameField  = "productName"
	LocationField     = "location"
	SupplierNameField = "supplierName"
	DescriptionField  = "description"
	ImageURLField     = "imageUrl"
	OwnerIDField      = "userId"
)

// ProductDocumentFromEntity flattens a product entity into its document shape.
func ProductDocumentFromEntity(product *entity.Product) *ProductDocument {
	return &ProductDocument{
		ProductName:  product.Name,
		Location:     product.Location,
		SupplierName: product.SupplierName,
		Description:  product.Description,
		ImageURL:     product.ImageURL,
		UserID:       product.OwnerID.String(),
		CreatedAt:    product.CreatedAt,
	}
}

// ToEntity rebuilds the product entity from its document and key.
func (d *ProductDocument) ToEntity(id uuid.UUID) (*entity.Product, error) {
	ownerID, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, err
	}

	return &entity.Product{
		ID:           id,
		Name:         d.ProductName,
		Location:     d.Location,
		SupplierName: d.SupplierName,
		Description:  d.Description,
		ImageURL:     d.ImageURL,
		OwnerID:      ownerID,
		CreatedAt:    d.CreatedAt,
	}, nil
}
