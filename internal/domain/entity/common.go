// Package entity contains the core business objects of the project.
package entity

import "time"

// CommonField carries the audit metadata shared by every persisted entity.
// It is embedded rather than inherited so each entity keeps a flat field set.
type CommonField struct {
	CreatedBy       int64      // ID of the user that created the record.
	CreatedDate     time.Time  // Timestamp of when the record was created.
	UpdatedBy       int64      // ID of the last user that updated the record, 0 if never updated.
	LastUpdatedDate *time.Time // Timestamp of the last update, nil if never updated.
	UpdatedCount    int        // Number of successful updates applied to the record.
}

// StampCreated records the creator of a new record.
func (c *CommonField) StampCreated(actorID int64, now time.Time) {
	c.CreatedBy = actorID
	c.CreatedDate = now
}

// StampUpdated records a successful update. UpdatedCount grows by exactly one per call.
func (c *CommonField) StampUpdated(actorID int64, now time.Time) {
	c.UpdatedBy = actorID
	c.LastUpdatedDate = &now
	c.UpdatedCount++
}
