// Package model holds the GORM persistence structs. They mirror the tables
// created by the goose migrations and are exported for the GORM Gen tool.
package model

import "time"

// CommonFieldModel holds the audit columns shared by every table.
type CommonFieldModel struct {
	CreatedBy       int64     `gorm:"not null;default:0"`
	CreatedDate     time.Time `gorm:"not null"`
	UpdatedBy       int64     `gorm:"not null;default:0"`
	LastUpdatedDate *time.Time
	UpdatedCount    int `gorm:"not null;default:0"`
}
