// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"strings"
	"time"

	"nms/internal/domain/entity"
)

// AuditFields is the outbound view of entity.CommonField. Inbound values are ignored.
type AuditFields struct {
	CreatedBy       int64      `json:"createdBy"`
	CreatedDate     time.Time  `json:"createdDate"`
	UpdatedBy       int64      `json:"updatedBy"`
	LastUpdatedDate *time.Time `json:"lastUpdatedDate,omitempty"`
	UpdatedCount    int        `json:"updatedCount"`
}

func fromCommonField(c entity.CommonField) AuditFields {
	return AuditFields{
		CreatedBy:       c.CreatedBy,
		CreatedDate:     c.CreatedDate,
		UpdatedBy:       c.UpdatedBy,
		LastUpdatedDate: c.LastUpdatedDate,
		UpdatedCount:    c.UpdatedCount,
	}
}

// trim is the string normalization applied to every inbound text field.
func trim(s *string) {
	*s = strings.TrimSpace(*s)
}

// lower trims and lowercases a canonical key such as a source type or role name.
func lower(s *string) {
	*s = strings.ToLower(strings.TrimSpace(*s))
}
