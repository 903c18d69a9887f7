package rider

import (
	"time"
)

// Status is the rider's application/approval state.
type Status string

const (
	StatusPending     Status = "pending"
	StatusActive      Status = "active"
	StatusDeactivated Status = "deactivated"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusDeactivated:
		return true
	default:
		return false
	}
}

// WorkStatus is the rider's current availability for new assignments.
type WorkStatus string

const (
	WorkStatusAvailable    WorkStatus = "available"
	WorkStatusInDelivery   WorkStatus = "in_delivery"
	WorkStatusNotAvailable WorkStatus = "not_available"
)

// Rider is a courier entity capable of being assigned parcels. A rider record
// starts as a pending application; an admin activating it also promotes the
// linked user account to the rider role.
type Rider struct {
	ID               uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string     `gorm:"type:varchar(255);not null" json:"name"`
	Email            string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Phone            string     `gorm:"size:20" json:"phone"`
	Age              int        `json:"age"`
	NID              string     `gorm:"size:30" json:"nid"`
	District         string     `gorm:"size:120;index" json:"district"`
	BikeBrand        string     `gorm:"size:120" json:"bike_brand"`
	BikeRegistration string     `gorm:"size:50" json:"bike_registration"`
	Status           Status     `gorm:"size:20;not null;default:pending" json:"status"`
	WorkStatus       WorkStatus `gorm:"size:20;not null;default:not_available" json:"work_status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Rider model
func (Rider) TableName() string {
	return "riders"
}
