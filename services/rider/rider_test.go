package rider

import (
	"testing"

	riderModel "profast/models/rider"
	userModel "profast/models/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&riderModel.Rider{}, &userModel.User{})
	require.NoError(t, err)

	return db
}

func TestService_SetStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	t.Run("activation promotes the linked user to rider", func(t *testing.T) {
		u := userModel.User{Email: "kamal@x.com", Role: userModel.RoleUser}
		require.NoError(t, db.Create(&u).Error)
		r := riderModel.Rider{
			Name: "Kamal", Email: "kamal@x.com", District: "Dhaka",
			Status: riderModel.StatusPending, WorkStatus: riderModel.WorkStatusNotAvailable,
		}
		require.NoError(t, db.Create(&r).Error)

		updated, err := svc.SetStatus(r.ID, riderModel.StatusActive)
		require.NoError(t, err)

		assert.Equal(t, riderModel.StatusActive, updated.Status)
		assert.Equal(t, riderModel.WorkStatusAvailable, updated.WorkStatus)

		var freshUser userModel.User
		require.NoError(t, db.Where("email = ?", "kamal@x.com").First(&freshUser).Error)
		assert.Equal(t, userModel.RoleRider, freshUser.Role)
	})

	t.Run("re-activating an active rider leaves the user role alone", func(t *testing.T) {
		u := userModel.User{Email: "sumi@x.com", Role: userModel.RoleAdmin}
		require.NoError(t, db.Create(&u).Error)
		r := riderModel.Rider{
			Name: "Sumi", Email: "sumi@x.com", District: "Khulna",
			Status: riderModel.StatusActive, WorkStatus: riderModel.WorkStatusInDelivery,
		}
		require.NoError(t, db.Create(&r).Error)

		_, err := svc.SetStatus(r.ID, riderModel.StatusActive)
		require.NoError(t, err)

		var freshUser userModel.User
		require.NoError(t, db.Where("email = ?", "sumi@x.com").First(&freshUser).Error)
		assert.Equal(t, userModel.RoleAdmin, freshUser.Role)
	})

	t.Run("re-activating an active rider keeps them in delivery", func(t *testing.T) {
		r := riderModel.Rider{
			Name: "Tania", Email: "tania@x.com", District: "Bogura",
			Status: riderModel.StatusActive, WorkStatus: riderModel.WorkStatusInDelivery,
		}
		require.NoError(t, db.Create(&r).Error)

		updated, err := svc.SetStatus(r.ID, riderModel.StatusActive)
		require.NoError(t, err)

		assert.Equal(t, riderModel.StatusActive, updated.Status)
		assert.Equal(t, riderModel.WorkStatusInDelivery, updated.WorkStatus)

		var fresh riderModel.Rider
		require.NoError(t, db.First(&fresh, r.ID).Error)
		assert.Equal(t, riderModel.WorkStatusInDelivery, fresh.WorkStatus)
	})

	t.Run("deactivation takes the rider off the road", func(t *testing.T) {
		r := riderModel.Rider{
			Name: "Rahim", Email: "rahim@x.com", District: "Sylhet",
			Status: riderModel.StatusActive, WorkStatus: riderModel.WorkStatusAvailable,
		}
		require.NoError(t, db.Create(&r).Error)

		updated, err := svc.SetStatus(r.ID, riderModel.StatusDeactivated)
		require.NoError(t, err)

		assert.Equal(t, riderModel.StatusDeactivated, updated.Status)
		assert.Equal(t, riderModel.WorkStatusNotAvailable, updated.WorkStatus)
	})

	t.Run("unknown rider", func(t *testing.T) {
		_, err := svc.SetStatus(9999, riderModel.StatusActive)
		assert.ErrorIs(t, err, ErrRiderNotFound)
	})
}
