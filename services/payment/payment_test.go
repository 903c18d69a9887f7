package payment

import (
	"testing"

	parcelModel "profast/models/parcel"
	paymentModel "profast/models/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&parcelModel.Parcel{}, &paymentModel.Payment{})
	require.NoError(t, err)

	return db
}

func paymentCount(t *testing.T, db *gorm.DB) int64 {
	var count int64
	require.NoError(t, db.Model(&paymentModel.Payment{}).Count(&count).Error)
	return count
}

func TestService_Record(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	t.Run("first payment flips the parcel to paid", func(t *testing.T) {
		p := parcelModel.Parcel{
			TrackingID: "PCL-PAY-1", Title: "books", CreatedBy: "a@x.com",
			PaymentStatus:  parcelModel.PaymentStatusUnpaid,
			DeliveryStatus: parcelModel.DeliveryStatusPending,
			CashoutStatus:  parcelModel.CashoutStatusNotCashedOut,
		}
		require.NoError(t, db.Create(&p).Error)

		record, err := svc.Record(p.ID, "a@x.com", 100, "card", "t1")
		require.NoError(t, err)

		assert.Equal(t, p.ID, record.ParcelID)
		assert.False(t, record.PaidAt.IsZero())

		var fresh parcelModel.Parcel
		require.NoError(t, db.First(&fresh, p.ID).Error)
		assert.Equal(t, parcelModel.PaymentStatusPaid, fresh.PaymentStatus)

		var count int64
		require.NoError(t, db.Model(&paymentModel.Payment{}).
			Where("parcel_id = ?", p.ID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("second payment for the same parcel is rejected", func(t *testing.T) {
		p := parcelModel.Parcel{
			TrackingID: "PCL-PAY-2", Title: "shoes", CreatedBy: "a@x.com",
			PaymentStatus:  parcelModel.PaymentStatusUnpaid,
			DeliveryStatus: parcelModel.DeliveryStatusPending,
			CashoutStatus:  parcelModel.CashoutStatusNotCashedOut,
		}
		require.NoError(t, db.Create(&p).Error)

		_, err := svc.Record(p.ID, "a@x.com", 100, "card", "t1")
		require.NoError(t, err)

		before := paymentCount(t, db)

		_, err = svc.Record(p.ID, "a@x.com", 100, "card", "t2")
		assert.ErrorIs(t, err, ErrAlreadyPaidOrMissing)
		assert.Equal(t, before, paymentCount(t, db))
	})

	t.Run("missing parcel creates no payment record", func(t *testing.T) {
		before := paymentCount(t, db)

		_, err := svc.Record(9999, "a@x.com", 100, "card", "t3")
		assert.ErrorIs(t, err, ErrAlreadyPaidOrMissing)
		assert.Equal(t, before, paymentCount(t, db))
	})
}
