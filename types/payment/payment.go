package payment

import (
	"fmt"
)

type PaymentCreateRequest struct {
	ParcelID      uint    `json:"parcelId" validate:"required"`
	Email         string  `json:"email" validate:"required"`
	Amount        float64 `json:"amount" validate:"required"`
	PaymentMethod string  `json:"paymentMethod" validate:"required"`
	TransactionID string  `json:"transactionId" validate:"required"`
}

// Validate validates the PaymentCreateRequest fields
func (r *PaymentCreateRequest) Validate() error {
	if r.ParcelID == 0 {
		return fmt.Errorf("parcelId is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	if r.PaymentMethod == "" {
		return fmt.Errorf("paymentMethod is required")
	}
	if r.TransactionID == "" {
		return fmt.Errorf("transactionId is required")
	}
	return nil
}

type PaymentIntentRequest struct {
	AmountInCents int64 `json:"amountInCents" validate:"required"`
}

// Validate validates the PaymentIntentRequest fields
func (r *PaymentIntentRequest) Validate() error {
	if r.AmountInCents <= 0 {
		return fmt.Errorf("amountInCents must be greater than zero")
	}
	return nil
}
