// Package model holds the flat document shapes persisted to Firestore and
// their conversions to and from domain entities.
package model

import (
	"time"

	"afritrade/internal/domain/entity"

	"github.com/google/uuid"
)

// UserDocument mirrors one document in a role collection. Documents are keyed
// by email; the role is implied by the collection the document lives in, so it
// is not stored. Role-specific fields are flattened with omitempty.
type UserDocument struct {
	GeneratedID string `firestore:"generatedId"`
	Email       string `firestore:"email"`
	Name        string `firestore:"name"`
	Location    string `firestore:"location"`
	Password    string `firestore:"password"` // bcrypt digest

	// Client fields
	BusinessType string `firestore:"businessType,omitempty"`
	TradeFocus   string `firestore:"tradeFocus,omitempty"`

	// Supplier fields
	CompanyName       string   `firestore:"companyName,omitempty"`
	ProductCategories []string `firestore:"productCategories,omitempty"`
	Capacity          int      `firestore:"capacity,omitempty"`

	// Transporter fields
	TransportModes []string `firestore:"transportModes,omitempty"`
	RegionsCovered []string `firestore:"regionsCovered,omitempty"`

	CreatedAt time.Time `firestore:"createdAt"`
}

// GeneratedIDField is the document field queried by cross-collection id lookup.
const GeneratedIDField = "generatedId"

// UserDocumentFromEntity flattens a user entity into its document shape.
func UserDocumentFromEntity(user *entity.User) *UserDocument {
	doc := &UserDocument{
		GeneratedID: user.GeneratedID.String(),
		Email:       user.Email,
		Name:        user.Name,
		Location:    user.Location,
		Password:    user.PasswordHash,
		CreatedAt:   user.CreatedAt,
	}

	if p := user.Client; p != nil {
		doc.BusinessType = p.BusinessType
		doc.TradeFocus = p.TradeFocus
	}
	if p := user.Supplier; p != nil {
		doc.CompanyName = p.CompanyName
		doc.ProductCategories = p.ProductCategories
		doc.Capacity = p.Capacity
	}
	if p := user.Transporter; p != nil {
		doc.TransportModes = p.TransportModes
		doc.RegionsCovered = p.RegionsCovered
	}

	return doc
}

// ToEntity rebuilds the user entity for the role collection it was read from.
func (d *UserDocument) ToEntity(role entity.Role) (*entity.User, error) {
	generatedID, err := uuid.Parse(d.GeneratedID)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		GeneratedID:  generatedID,
		Role:         role,
		Email:        d.Email,
		Name:         d.Name,
		Location:     d.Location,
		PasswordHash: d.Password,
		CreatedAt:    d.CreatedAt,
	}

	switch role {
	case entity.RoleClient:
		user.Client = &entity.ClientProfile{
			BusinessType: d.BusinessType,
			TradeFocus:   d.TradeFocus,
		}
	case entity.RoleSupplier:
		user.Supplier = &entity.SupplierProfile{
			CompanyName:       d.CompanyName,
			ProductCategories: d.ProductCategories,
			Capacity:          d.Capacity,
		}
	case entity.RoleTransporter:
		user.Transporter = &entity.TransporterProfile{
			TransportModes: d.TransportModes,
			RegionsCovered: d.RegionsCovered,
		}
	}

	return user, nil
}
