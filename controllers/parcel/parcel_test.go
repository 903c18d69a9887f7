package parcel

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"profast/logger"
	"profast/middleware"
	logModel "profast/models/log"
	parcelModel "profast/models/parcel"
	riderModel "profast/models/rider"
	trackingModel "profast/models/tracking"
	userModel "profast/models/user"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubVerifier struct {
	subject middleware.Subject
}

func (s *stubVerifier) Verify(token string) (middleware.Subject, error) {
	return s.subject, nil
}

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&userModel.User{}, &parcelModel.Parcel{}, &riderModel.Rider{},
		&trackingModel.TrackingEvent{}, &logModel.Log{})
	require.NoError(t, err)

	verifier := &stubVerifier{subject: middleware.Subject{UID: "u1", Email: "a@x.com"}}
	auth := middleware.NewAuth(db, verifier)
	asyncLogger := logger.NewAsyncLogger(db)
	go asyncLogger.ProcessLog()

	pc := NewParcelController(db, asyncLogger)

	app := fiber.New()
	app.Get("/api/parcels", auth.RequireAuth(), auth.RequireSubjectMatch(), pc.Index)
	app.Post("/api/parcels", auth.RequireAuth(), auth.RequireSubjectMatch(), pc.Store)
	app.Delete("/api/parcels/:id", auth.RequireAuth(), auth.RequireSubjectMatch(), pc.Destroy)

	return app, db
}

func decodeEnvelope(t *testing.T, body io.Reader) map[string]interface{} {
	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&envelope))
	return envelope
}

func TestParcelCreateAndList(t *testing.T) {
	app, db := setupTestApp(t)

	t.Run("create returns an identifier", func(t *testing.T) {
		payload := []byte(`{"title":"books","created_by":"a@x.com"}`)
		req := httptest.NewRequest("POST", "/api/parcels?uid=u1", bytes.NewReader(payload))
		req.Header.Set("Authorization", "Bearer good-token")
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		envelope := decodeEnvelope(t, resp.Body)
		data := envelope["data"].(map[string]interface{})
		assert.NotZero(t, data["id"])
		assert.NotEmpty(t, data["tracking_id"])
		assert.Equal(t, "unpaid", data["payment_status"])
		assert.Equal(t, "pending", data["delivery_status"])

		// Creation also writes the first tracking event.
		var events []trackingModel.TrackingEvent
		require.NoError(t, db.Where("tracking_id = ?", data["tracking_id"]).Find(&events).Error)
		require.Len(t, events, 1)
		assert.Equal(t, "submitted", events[0].Status)
	})

	t.Run("list by creator email contains the parcel", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/parcels?uid=u1&email=a@x.com", nil)
		req.Header.Set("Authorization", "Bearer good-token")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		envelope := decodeEnvelope(t, resp.Body)
		data := envelope["data"].([]interface{})
		require.NotEmpty(t, data)
		first := data[0].(map[string]interface{})
		assert.Equal(t, "a@x.com", first["created_by"])
	})

	t.Run("foreign uid in the query is forbidden", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/parcels?uid=somebody-else&email=a@x.com", nil)
		req.Header.Set("Authorization", "Bearer good-token")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("missing title rejected", func(t *testing.T) {
		payload := []byte(`{"created_by":"a@x.com"}`)
		req := httptest.NewRequest("POST", "/api/parcels?uid=u1", bytes.NewReader(payload))
		req.Header.Set("Authorization", "Bearer good-token")
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestParcelDestroy(t *testing.T) {
	app, db := setupTestApp(t)

	p := parcelModel.Parcel{
		TrackingID: "PCL-DEL-1", Title: "old", CreatedBy: "a@x.com",
		PaymentStatus:  parcelModel.PaymentStatusUnpaid,
		DeliveryStatus: parcelModel.DeliveryStatusPending,
		CashoutStatus:  parcelModel.CashoutStatusNotCashedOut,
	}
	require.NoError(t, db.Create(&p).Error)

	t.Run("delete removes the parcel", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/parcels/1?uid=u1", nil)
		req.Header.Set("Authorization", "Bearer good-token")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var count int64
		require.NoError(t, db.Model(&parcelModel.Parcel{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("deleting again is a 404", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/parcels/1?uid=u1", nil)
		req.Header.Set("Authorization", "Bearer good-token")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
