package parcel

import (
	"errors"
	"fmt"

	"profast/logger"
	"profast/middleware"
	parcelModel "profast/models/parcel"
	trackingModel "profast/models/tracking"
	parcelService "profast/services/parcel"
	"profast/types"
	parcelTypes "profast/types/parcel"
	"profast/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ParcelController handles parcel CRUD and lifecycle HTTP requests.
type ParcelController struct {
	DB        *gorm.DB
	Logger    *logger.AsyncLogger
	Lifecycle *parcelService.LifecycleService
}

func NewParcelController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *ParcelController {
	return &ParcelController{
		DB:        db,
		Logger:    asyncLogger,
		Lifecycle: parcelService.NewLifecycleService(db),
	}
}

// Index lists parcels, optionally filtered by creator email, payment status
// and delivery status.
func (pc *ParcelController) Index(c *fiber.Ctx) error {
	query := pc.DB.Model(&parcelModel.Parcel{})

	if email := c.Query("email"); email != "" {
		query = query.Where("created_by = ?", email)
	}
	if ps := c.Query("payment_status"); ps != "" {
		query = query.Where("payment_status = ?", ps)
	}
	if ds := c.Query("delivery_status"); ds != "" {
		query = query.Where("delivery_status = ?", ds)
	}

	var parcels []parcelModel.Parcel
	if err := query.Order("created_at DESC").Find(&parcels).Error; err != nil {
		logger.Error("Failed to list parcels", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch parcels",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Parcels fetched successfully",
		Data:    parcels,
	})
}

// Show fetches one parcel by id.
func (pc *ParcelController) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid parcel id",
		})
	}

	var p parcelModel.Parcel
	if err := pc.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Parcel not found",
			})
		}
		logger.Error("Failed to fetch parcel", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch parcel",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Parcel fetched successfully",
		Data:    p,
	})
}

// Store creates a new parcel in pending/unpaid state and appends the first
// tracking event.
func (pc *ParcelController) Store(c *fiber.Ctx) error {
	var req parcelTypes.ParcelCreateRequest
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

	p := parcelModel.Parcel{
		TrackingID:       utils.GenerateTrackingID(),
		Title:            req.Title,
		ParcelType:       req.ParcelType,
		WeightKG:         req.WeightKG,
		Cost:             req.Cost,
		SenderDistrict:   req.SenderDistrict,
		ReceiverDistrict: req.ReceiverDistrict,
		ReceiverName:     req.ReceiverName,
		ReceiverPhone:    req.ReceiverPhone,
		CreatedBy:        req.CreatedBy,
		PaymentStatus:    parcelModel.PaymentStatusUnpaid,
		DeliveryStatus:   parcelModel.DeliveryStatusPending,
		CashoutStatus:    parcelModel.CashoutStatusNotCashedOut,
	}

	if err := pc.DB.Create(&p).Error; err != nil {
		logger.Error("Failed to create parcel", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create parcel",
		})
	}

	pc.DB.Create(trackingEventFor(&p, "submitted", "Parcel submitted by "+req.CreatedBy, req.CreatedBy))

	logger.Success(fmt.Sprintf("Parcel created successfully with ID: %d", p.ID))
	pc.Logger.Log(utils.CreateLogEntry(c))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Parcel created successfully",
		Data:    p,
	})
}

// Destroy deletes a parcel. Deletion is not blocked by delivery state.
func (pc *ParcelController) Destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid parcel id",
		})
	}

	res := pc.DB.Delete(&parcelModel.Parcel{}, id)
	if res.Error != nil {
		logger.Error("Failed to delete parcel", res.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete parcel",
		})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Parcel not found",
		})
	}

	pc.Logger.Log(utils.CreateLogEntry(c))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Parcel deleted successfully",
	})
}

// Assign attaches a rider to the parcel and marks the rider in delivery.
func (pc *ParcelController) Assign(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid parcel id",
		})
	}

	var req parcelTypes.AssignRiderRequest
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

	p, err := pc.Lifecycle.Assign(uint(id), req.RiderID, updatedBy(c))
	if err != nil {
		switch {
		case errors.Is(err, parcelService.ErrParcelNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Parcel not found",
			})
		case errors.Is(err, parcelService.ErrRiderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Rider not found",
			})
		default:
			logger.Error("Failed to assign rider", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to assign rider",
			})
		}
	}

	logger.Success(fmt.Sprintf("Rider %d assigned to parcel %d", req.RiderID, p.ID))
	pc.Logger.Log(utils.CreateLogEntry(c))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Rider assigned successfully",
		Data:    p,
	})
}

// UpdateStatus advances the parcel's delivery status.
func (pc *ParcelController) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid parcel id",
		})
	}

	var req parcelTypes.StatusUpdateRequest
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

	p, err := pc.Lifecycle.UpdateDeliveryStatus(uint(id), req.Status, updatedBy(c))
	if err != nil {
		if errors.Is(err, parcelService.ErrParcelNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Parcel not found",
			})
		}
		logger.Error("Failed to update delivery status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update delivery status",
		})
	}

	logger.Success(fmt.Sprintf("Parcel %d moved to %s", p.ID, p.DeliveryStatus))
	pc.Logger.Log(utils.CreateLogEntry(c))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Delivery status updated successfully",
		Data:    p,
	})
}

// Cashout marks the parcel's earnings as collected.
func (pc *ParcelController) Cashout(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid parcel id",
		})
	}

	p, err := pc.Lifecycle.Cashout(uint(id), updatedBy(c))
	if err != nil {
		switch {
		case errors.Is(err, parcelService.ErrParcelNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Parcel not found",
			})
		case errors.Is(err, parcelService.ErrAlreadyCashedOut):
			return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
				Status:  fiber.StatusConflict,
				Message: "Parcel already cashed out",
			})
		default:
			logger.Error("Failed to cash out parcel", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to cash out parcel",
			})
		}
	}

	pc.Logger.Log(utils.CreateLogEntry(c))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Parcel cashed out successfully",
		Data:    p,
	})
}

// StatusCount returns the delivery-status histogram used by the admin
// dashboard.
func (pc *ParcelController) StatusCount(c *fiber.Ctx) error {
	type statusCount struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}

	var counts []statusCount
	if err := pc.DB.Model(&parcelModel.Parcel{}).
		Select("delivery_status AS status, COUNT(*) AS count").
		Group("delivery_status").
		Scan(&counts).Error; err != nil {
		logger.Error("Failed to aggregate delivery statuses", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to aggregate delivery statuses",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Delivery status counts fetched successfully",
		Data:    counts,
	})
}

// RiderTasks lists the parcels currently assigned to a rider email that are
// still on the road.
func (pc *ParcelController) RiderTasks(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "email is required",
		})
	}

	var parcels []parcelModel.Parcel
	if err := pc.DB.Where("assigned_rider_email = ? AND delivery_status IN ?",
		email, parcelModel.InDeliveryStatuses()).
		Order("created_at DESC").Find(&parcels).Error; err != nil {
		logger.Error("Failed to list rider tasks", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch rider tasks",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Rider tasks fetched successfully",
		Data:    parcels,
	})
}

// RiderCompleted lists the parcels a rider has finished delivering.
func (pc *ParcelController) RiderCompleted(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "email is required",
		})
	}

	var parcels []parcelModel.Parcel
	if err := pc.DB.Where("assigned_rider_email = ? AND delivery_status IN ?",
		email, []parcelModel.DeliveryStatus{
			parcelModel.DeliveryStatusDelivered,
			parcelModel.DeliveryStatusWirehouseDelivered,
		}).Order("delivered_at DESC").Find(&parcels).Error; err != nil {
		logger.Error("Failed to list completed parcels", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch completed parcels",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Completed parcels fetched successfully",
		Data:    parcels,
	})
}

func trackingEventFor(p *parcelModel.Parcel, status, details, by string) *trackingModel.TrackingEvent {
	return &trackingModel.TrackingEvent{
		TrackingID: p.TrackingID,
		ParcelID:   &p.ID,
		Status:     status,
		Details:    details,
		UpdatedBy:  by,
	}
}

func updatedBy(c *fiber.Ctx) string {
	if subject, ok := middleware.SubjectFrom(c); ok {
		return subject.Email
	}
	return ""
}
