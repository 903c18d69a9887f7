package tracking

import (
	"time"
)

// TrackingEvent is one append-only log entry describing a status change for a
// shipment. Events are never updated or deleted; history reads order them by
// creation time ascending.
type TrackingEvent struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TrackingID string `gorm:"size:50;not null;index" json:"tracking_id"`
	ParcelID   *uint  `gorm:"index" json:"parcel_id,omitempty"`

	Status    string    `gorm:"size:50;not null" json:"status"`
	Details   string    `gorm:"type:text" json:"details"`
	UpdatedBy string    `gorm:"type:varchar(255)" json:"updated_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the TrackingEvent model
func (TrackingEvent) TableName() string {
	return "tracking_events"
}
