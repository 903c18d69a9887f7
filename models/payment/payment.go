package payment

import (
	"time"
)

// Payment is written exactly once per successful payment capture and is
// immutable thereafter. Its insertion is the only path that flips a parcel's
// payment status to paid.
type Payment struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ParcelID      uint      `gorm:"not null;index" json:"parcel_id"`
	Email         string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Amount        float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod string    `gorm:"size:50;not null" json:"payment_method"`
	TransactionID string    `gorm:"size:120;not null" json:"transaction_id"`
	PaidAt        time.Time `json:"paid_at"`
}

// TableName sets the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
