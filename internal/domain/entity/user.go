package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents one registered account within a single role collection.
// The Email is the document key inside that collection; GeneratedID is a
// secondary, role-agnostic identifier used for cross-collection lookup.
// The same email may exist under several roles as independent users.
type User struct {
	GeneratedID  uuid.UUID // Secondary unique identifier, distinct from the email key.
	Role         Role      // The role collection this account lives in.
	Email        string    // Document key within the role collection.
	Name         string
	Location     string
	PasswordHash string // bcrypt digest; never serialized to API responses.

	Client      *ClientProfile      // Set when Role == RoleClient.
	Supplier    *SupplierProfile    // Set when Role == RoleSupplier.
	Transporter *TransporterProfile // Set when Role == RoleTransporter.

	CreatedAt time.Time
}

// ClientProfile holds data specific to the "client" role.
type ClientProfile struct {
	BusinessType string // SME, exporter, manufacturer.
	TradeFocus   string // Products they deal in.
}

// SupplierProfile holds data specific to the "supplier" role.
type SupplierProfile struct {
	CompanyName       string
	ProductCategories []string // Categories like electronics, textiles.
	Capacity          int      // Max orders the supplier can handle.
}

// TransporterProfile holds data specific to the "transporter" role.
type TransporterProfile struct {
	TransportModes []string // Modes like road, air, sea.
	RegionsCovered []string
}
