package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a supplier listing. Its image lives in blob storage under the
// key prefix returned by MediaPrefix; ImageURL is the durable public URL of
// the uploaded image.
type Product struct {
	ID           uuid.UUID
	Name         string
	Location     string
	SupplierName string
	Description  string
	ImageURL     string
	OwnerID      uuid.UUID // GeneratedID of the user who listed the product.
	CreatedAt    time.Time
}

// MediaPrefix returns the blob-storage key prefix holding every asset of the
// product. Deleting a product removes everything under this prefix.
func (p *Product) MediaPrefix() string {
	return ProductMediaPrefix(p.ID)
}

// ProductMediaPrefix builds the storage prefix for a product id.
func ProductMediaPrefix(id uuid.UUID) string {
	return "products/" + id.String() + "/"
}

// ProductUpdate carries a partial update. Nil fields are left untouched;
// the persistence layer applies a merge, never a full overwrite.
type ProductUpdate struct {
	Name         *string
	Location     *string
	SupplierName *string
	Description  *string
	ImageURL     *string
}

// IsEmpty reports whether the update carries no fields at all.
func (u *ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Location == nil && u.SupplierName == nil &&
		u.Description == nil && u.ImageURL == nil
}
