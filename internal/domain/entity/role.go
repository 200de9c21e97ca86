// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of account a person can register in the marketplace.
type Role string

const (
	// RoleClient indicates a buyer (SME, exporter, manufacturer).
	RoleClient Role = "client"
	// RoleSupplier indicates a product supplier.
	RoleSupplier Role = "supplier"
	// RoleTransporter indicates a logistics provider.
	RoleTransporter Role = "transporter"
)

// AllRoles is the fixed scan order used by login and id lookup.
// The order is significant: when the same email is registered under several
// roles, the first matching collection in this order wins.
var AllRoles = Roles{RoleClient, RoleSupplier, RoleTransporter}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// Collection returns the name of the document collection backing this role.
func (r Role) Collection() string {
	switch r {
	case RoleClient:
		return "clients"
	case RoleSupplier:
		return "suppliers"
	case RoleTransporter:
		return "transporters"
	default:
		return ""
	}
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleSupplier, RoleTransporter:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
