// Package pubsub publishes audit events to Google Cloud Pub/Sub or, during
// development, to a local HTTP endpoint using the Pub/Sub push format.
package pubsub

import (
	"strconv"

	"nms/internal/domain/service"
)

const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// auditAttributes returns the message attributes subscribers can filter on.
func auditAttributes(event *service.AuditEvent) map[string]string {
	attributes := map[string]string{
		"entity":    event.Entity,
		"entity_id": strconv.FormatInt(event.EntityID, 10),
		"action":    string(event.Action),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
