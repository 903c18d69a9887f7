package payment

import (
	"errors"
	"time"

	parcelModel "profast/models/parcel"
	paymentModel "profast/models/payment"

	"gorm.io/gorm"
)

// ErrAlreadyPaidOrMissing is returned when the parcel update matched no row:
// either the parcel does not exist or its payment status was already paid.
// Both cases map to the same wire response.
var ErrAlreadyPaidOrMissing = errors.New("parcel not found or already paid")

// Service records captured payments against parcels.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// Record flips the parcel to paid and inserts the payment row. The guarded
// update enforces at most one paid transition per parcel: when it modifies
// zero rows no payment record is created.
func (s *Service) Record(parcelID uint, email string, amount float64, method, transactionID string) (*paymentModel.Payment, error) {
	res := s.DB.Model(&parcelModel.Parcel{}).
		Where("id = ? AND payment_status <> ?", parcelID, parcelModel.PaymentStatusPaid).
		Update("payment_status", parcelModel.PaymentStatusPaid)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyPaidOrMissing
	}

	p := paymentModel.Payment{
		ParcelID:      parcelID,
		Email:         email,
		Amount:        amount,
		PaymentMethod: method,
		TransactionID: transactionID,
		PaidAt:        time.Now(),
	}
	if err := s.DB.Create(&p).Error; err != nil {
		// The parcel is already marked paid at this point; there is no
		// compensating rollback.
		return nil, err
	}

	return &p, nil
}
