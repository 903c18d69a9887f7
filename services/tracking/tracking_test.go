package tracking

import (
	"testing"
	"time"

	trackingModel "profast/models/tracking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&trackingModel.TrackingEvent{})
	require.NoError(t, err)

	return db
}

func TestService_Append(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	t.Run("missing tracking id rejected", func(t *testing.T) {
		_, err := svc.Append(trackingModel.TrackingEvent{Status: "pending"})
		assert.ErrorIs(t, err, ErrMissingTrackingID)

		var count int64
		require.NoError(t, db.Model(&trackingModel.TrackingEvent{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("missing status rejected", func(t *testing.T) {
		_, err := svc.Append(trackingModel.TrackingEvent{TrackingID: "PCL-1"})
		assert.ErrorIs(t, err, ErrMissingStatus)

		var count int64
		require.NoError(t, db.Model(&trackingModel.TrackingEvent{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("valid event is stamped server-side", func(t *testing.T) {
		before := time.Now().Add(-time.Second)

		ev, err := svc.Append(trackingModel.TrackingEvent{
			TrackingID: "PCL-1",
			Status:     "submitted",
			UpdatedBy:  "a@x.com",
		})
		require.NoError(t, err)

		assert.NotZero(t, ev.ID)
		assert.True(t, ev.CreatedAt.After(before))
	})
}

func TestService_History(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	t.Run("events come back in chronological order", func(t *testing.T) {
		base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

		// Insert out of order on purpose; History must sort by time.
		for _, offset := range []time.Duration{2 * time.Hour, 0, time.Hour} {
			ev := trackingModel.TrackingEvent{
				TrackingID: "PCL-ORDER",
				Status:     "step",
				CreatedAt:  base.Add(offset),
			}
			require.NoError(t, db.Create(&ev).Error)
		}

		events, err := svc.History("PCL-ORDER")
		require.NoError(t, err)
		require.Len(t, events, 3)

		for i := 1; i < len(events); i++ {
			assert.False(t, events[i].CreatedAt.Before(events[i-1].CreatedAt))
		}
	})

	t.Run("unknown tracking id yields empty history", func(t *testing.T) {
		events, err := svc.History("PCL-NOPE")
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
