package parcel

import (
	"time"
)

// Parcel represents one shipment record tracked from creation to delivery.
// Rider identity is denormalized onto the parcel at assignment time so the
// customer-facing views never need a join against the riders table.
type Parcel struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TrackingID string `gorm:"size:50;uniqueIndex" json:"tracking_id"`

	Title            string  `gorm:"type:varchar(255);not null" json:"title"`
	ParcelType       string  `gorm:"size:50" json:"parcel_type"`
	WeightKG         float64 `gorm:"type:decimal(10,2)" json:"weight_kg"`
	Cost             float64 `gorm:"type:decimal(10,2)" json:"cost"`
	SenderDistrict   string  `gorm:"size:120" json:"sender_district"`
	ReceiverDistrict string  `gorm:"size:120" json:"receiver_district"`
	ReceiverName     string  `gorm:"type:varchar(255)" json:"receiver_name"`
	ReceiverPhone    string  `gorm:"size:20" json:"receiver_phone"`

	// CreatedBy is the email of the customer who submitted the parcel.
	CreatedBy string `gorm:"type:varchar(255);not null;index" json:"created_by"`

	PaymentStatus  PaymentStatus  `gorm:"size:20;not null;default:unpaid" json:"payment_status"`
	DeliveryStatus DeliveryStatus `gorm:"size:30;not null;default:pending" json:"delivery_status"`
	CashoutStatus  CashoutStatus  `gorm:"size:20;not null;default:not_cashed_out" json:"cashout_status"`

	AssignedRiderID    *uint   `gorm:"index" json:"assigned_rider_id,omitempty"`
	AssignedRiderName  *string `gorm:"type:varchar(255)" json:"assigned_rider_name,omitempty"`
	AssignedRiderEmail *string `gorm:"type:varchar(255)" json:"assigned_rider_email,omitempty"`

	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	PickedAt    *time.Time `json:"picked_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CashedOutAt *time.Time `json:"cashed_out_at,omitempty"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Parcel model
func (Parcel) TableName() string {
	return "parcels"
}
