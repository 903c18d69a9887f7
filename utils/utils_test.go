package utils

import (
	"strings"
	"testing"

	"profast/database"
	userModel "profast/models/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestGetUserByEmail(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userModel.User{}))
	database.DB = db

	require.NoError(t, db.Create(&userModel.User{
		Email: "mina@x.com", Name: "Mina", Role: userModel.RoleUser,
	}).Error)

	t.Run("known email", func(t *testing.T) {
		u, err := GetUserByEmail("mina@x.com")
		require.NoError(t, err)
		assert.Equal(t, "Mina", u.Name)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := GetUserByEmail("nobody@x.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("empty email", func(t *testing.T) {
		_, err := GetUserByEmail("")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrUserNotFound)
	})
}

func TestGenerateTrackingID(t *testing.T) {
	id := GenerateTrackingID()
	assert.True(t, strings.HasPrefix(id, "PCL-"))
	assert.NotEqual(t, id, GenerateTrackingID())
}
