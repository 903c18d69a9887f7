package user

import (
	"bytes"
	"net/http/httptest"
	"testing"
	"time"

	"profast/logger"
	logModel "profast/models/log"
	userModel "profast/models/user"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&userModel.User{}, &logModel.Log{})
	require.NoError(t, err)

	asyncLogger := logger.NewAsyncLogger(db)
	go asyncLogger.ProcessLog()

	uc := NewUserController(db, asyncLogger)

	app := fiber.New()
	app.Post("/api/users", uc.Login)

	return app, db
}

func postLogin(t *testing.T, app *fiber.App, body string) int {
	req := httptest.NewRequest("POST", "/api/users", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestLoginUpsert(t *testing.T) {
	app, db := setupTestApp(t)

	t.Run("first contact inserts with the user role", func(t *testing.T) {
		status := postLogin(t, app, `{"email":"a@x.com","name":"Anika"}`)
		assert.Equal(t, fiber.StatusCreated, status)

		var u userModel.User
		require.NoError(t, db.Where("email = ?", "a@x.com").First(&u).Error)
		assert.Equal(t, userModel.RoleUser, u.Role)
		assert.False(t, u.LastLoggedIn.IsZero())
	})

	t.Run("repeat login only refreshes the timestamp", func(t *testing.T) {
		// Promote manually, then log in again: the role must survive.
		require.NoError(t, db.Model(&userModel.User{}).
			Where("email = ?", "a@x.com").
			Updates(map[string]interface{}{
				"role":           userModel.RoleAdmin,
				"last_logged_in": time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			}).Error)

		status := postLogin(t, app, `{"email":"a@x.com"}`)
		assert.Equal(t, fiber.StatusOK, status)

		var u userModel.User
		require.NoError(t, db.Where("email = ?", "a@x.com").First(&u).Error)
		assert.Equal(t, userModel.RoleAdmin, u.Role)
		assert.True(t, u.LastLoggedIn.After(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)))

		var count int64
		require.NoError(t, db.Model(&userModel.User{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("missing email rejected", func(t *testing.T) {
		status := postLogin(t, app, `{"name":"No Email"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}
