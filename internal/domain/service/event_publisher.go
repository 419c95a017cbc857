package service

import (
	"context"
	"time"
)

// AuditAction names the kind of change recorded in an AuditEvent.
type AuditAction string

const (
	AuditActionCreated AuditAction = "created"
	AuditActionUpdated AuditAction = "updated"
)

// AuditEvent describes a committed change to a managed entity.
type AuditEvent struct {
	RequestID  string      `json:"request_id,omitempty"` // For distributed tracing
	Entity     string      `json:"entity"`               // e.g. "address", "country"
	EntityID   int64       `json:"entity_id"`
	Action     AuditAction `json:"action"`
	ActorID    int64       `json:"actor_id"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAuditEvent publishes an audit event for downstream consumers
	PublishAuditEvent(ctx context.Context, event *AuditEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
