package service

import (
	"context"
)

// Event types published by the core services. Orphan events feed an external
// reconciliation sweep that reclaims blobs left behind by partial failures.
const (
	EventProductCreated       = "product.created"
	EventProductDeleted       = "product.deleted"
	EventProductCreateOrphan  = "product.create_orphaned"
	EventProductBlobsOrphaned = "product.blobs_orphaned"
	EventOrderPlaced          = "order.placed"
	EventOrderStatusChanged   = "order.status_changed"
)

// DomainEvent represents a lifecycle event emitted by the core services.
type DomainEvent struct {
	EventID    string            `json:"event_id"`
	Type       string            `json:"type"`
	Subject    string            `json:"subject"` // ID of the record the event is about.
	Attributes map[string]string `json:"attributes,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEvent publishes a domain event for async processing
	PublishEvent(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
