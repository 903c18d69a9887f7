package rider

import (
	"errors"
	"fmt"

	"profast/logger"
	riderModel "profast/models/rider"
	riderService "profast/services/rider"
	"profast/types"
	riderTypes "profast/types/rider"
	"profast/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RiderController handles rider applications and the approval lifecycle.
type RiderController struct {
	DB      *gorm.DB
	Logger  *logger.AsyncLogger
	Service *riderService.Service
}

func NewRiderController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *RiderController {
	return &RiderController{
		DB:      db,
		Logger:  asyncLogger,
		Service: riderService.NewService(db),
	}
}

// Apply submits a rider application in pending state.
func (rc *RiderController) Apply(c *fiber.Ctx) error {
	var req riderTypes.RiderApplyRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	var existing riderModel.Rider
	err := rc.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "A rider application already exists for this email",
			Data:    existing,
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing rider application", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	r := riderModel.Rider{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Age:              req.Age,
		NID:              req.NID,
		District:         req.District,
		BikeBrand:        req.BikeBrand,
		BikeRegistration: req.BikeRegistration,
		Status:           riderModel.StatusPending,
		WorkStatus:       riderModel.WorkStatusNotAvailable,
	}

	if err := rc.DB.Create(&r).Error; err != nil {
		logger.Error("Failed to create rider application", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create rider application",
		})
	}

	logger.Success(fmt.Sprintf("Rider application submitted with ID: %d", r.ID))
	rc.Logger.Log(utils.CreateLogEntry(c))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Rider application submitted successfully",
		Data:    r,
	})
}

// Pending lists rider applications awaiting review.
func (rc *RiderController) Pending(c *fiber.Ctx) error {
	return rc.listByStatus(c, riderModel.StatusPending)
}

// Active lists approved riders.
func (rc *RiderController) Active(c *fiber.Ctx) error {
	return rc.listByStatus(c, riderModel.StatusActive)
}

func (rc *RiderController) listByStatus(c *fiber.Ctx, status riderModel.Status) error {
	var riders []riderModel.Rider
	if err := rc.DB.Where("status = ?", status).
		Order("created_at DESC").Find(&riders).Error; err != nil {
		logger.Error("Failed to list riders", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch riders",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Riders fetched successfully",
		Data:    riders,
	})
}

// Available lists active riders free for a new assignment, optionally
// narrowed to a district.
func (rc *RiderController) Available(c *fiber.Ctx) error {
	query := rc.DB.Where("status = ? AND work_status = ?",
		riderModel.StatusActive, riderModel.WorkStatusAvailable)

	if district := c.Query("district"); district != "" {
		query = query.Where("district = ?", district)
	}

	var riders []riderModel.Rider
	if err := query.Find(&riders).Error; err != nil {
		logger.Error("Failed to list available riders", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch available riders",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Available riders fetched successfully",
		Data:    riders,
	})
}

// UpdateStatus activates or deactivates a rider application. Activation also
// promotes the linked user account to the rider role.
func (rc *RiderController) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid rider id",
		})
	}

	var req riderTypes.RiderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	r, err := rc.Service.SetStatus(uint(id), req.Status)
	if err != nil {
		if errors.Is(err, riderService.ErrRiderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Rider not found",
			})
		}
		logger.Error("Failed to update rider status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update rider status",
		})
	}

	logger.Success(fmt.Sprintf("Rider %d moved to %s", r.ID, r.Status))
	rc.Logger.Log(utils.CreateLogEntry(c))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Rider status updated successfully",
		Data:    r,
	})
}
