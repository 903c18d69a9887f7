package tracking

import (
	"errors"

	"profast/logger"
	trackingModel "profast/models/tracking"
	trackingService "profast/services/tracking"
	"profast/types"
	trackingTypes "profast/types/tracking"
	"profast/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TrackingController exposes the append-only tracking log.
type TrackingController struct {
	DB      *gorm.DB
	Logger  *logger.AsyncLogger
	Service *trackingService.Service
}

func NewTrackingController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *TrackingController {
	return &TrackingController{
		DB:      db,
		Logger:  asyncLogger,
		Service: trackingService.NewService(db),
	}
}

// History returns the chronological event list for a tracking id.
func (tc *TrackingController) History(c *fiber.Ctx) error {
	trackingID := c.Params("trackingId")

	events, err := tc.Service.History(trackingID)
	if err != nil {
		logger.Error("Failed to fetch tracking history", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch tracking history",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Tracking history fetched successfully",
		Data:    events,
	})
}

// Store appends one tracking event.
func (tc *TrackingController) Store(c *fiber.Ctx) error {
	var req trackingTypes.TrackingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	ev, err := tc.Service.Append(trackingModel.TrackingEvent{
		TrackingID: req.TrackingID,
		ParcelID:   req.ParcelID,
		Status:     req.Status,
		Details:    req.Details,
		UpdatedBy:  req.UpdatedBy,
	})
	if err != nil {
		if errors.Is(err, trackingService.ErrMissingTrackingID) ||
			errors.Is(err, trackingService.ErrMissingStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: err.Error(),
			})
		}
		logger.Error("Failed to append tracking event", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to append tracking event",
		})
	}

	tc.Logger.Log(utils.CreateLogEntry(c))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Tracking event recorded successfully",
		Data:    ev,
	})
}
