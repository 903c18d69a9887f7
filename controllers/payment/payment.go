package payment

import (
	"errors"
	"fmt"
	"time"

	"profast/httpServices/payments"
	"profast/logger"
	paymentModel "profast/models/payment"
	paymentService "profast/services/payment"
	"profast/types"
	paymentTypes "profast/types/payment"
	"profast/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// PaymentController records captured payments and brokers payment intents
// with the external gateway.
type PaymentController struct {
	DB      *gorm.DB
	Logger  *logger.AsyncLogger
	Service *paymentService.Service
	Gateway *payments.Client
}

func NewPaymentController(db *gorm.DB, asyncLogger *logger.AsyncLogger, gateway *payments.Client) *PaymentController {
	return &PaymentController{
		DB:      db,
		Logger:  asyncLogger,
		Service: paymentService.NewService(db),
		Gateway: gateway,
	}
}

// Index lists payments, newest first, filtered by payer email and optionally
// bounded to one calendar day via date=YYYY-MM-DD.
func (pc *PaymentController) Index(c *fiber.Ctx) error {
	query := pc.DB.Model(&paymentModel.Payment{})

	if email := c.Query("email"); email != "" {
		query = query.Where("email = ?", email)
	}

	if date := c.Query("date"); date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "date must be formatted as YYYY-MM-DD",
			})
		}
		bounds := now.New(day)
		query = query.Where("paid_at BETWEEN ? AND ?",
			bounds.BeginningOfDay(), bounds.EndOfDay())
	}

	var records []paymentModel.Payment
	if err := query.Order("paid_at DESC").Find(&records).Error; err != nil {
		logger.Error("Failed to list payments", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch payments",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Payments fetched successfully",
		Data:    records,
	})
}

// Store records a captured payment against a parcel. A parcel that is
// missing or already paid yields a 404 and no payment record.
func (pc *PaymentController) Store(c *fiber.Ctx) error {
	var req paymentTypes.PaymentCreateRequest
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

	record, err := pc.Service.Record(req.ParcelID, req.Email, req.Amount, req.PaymentMethod, req.TransactionID)
	if err != nil {
		if errors.Is(err, paymentService.ErrAlreadyPaidOrMissing) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Parcel not found or already paid",
			})
		}
		logger.Error("Failed to record payment", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to record payment",
		})
	}

	logger.Success(fmt.Sprintf("Payment recorded for parcel %d", req.ParcelID))
	pc.Logger.Log(utils.CreateLogEntry(c))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Payment recorded successfully",
		Data:    record,
	})
}

// CreateIntent obtains a payment-intent client secret from the gateway.
func (pc *PaymentController) CreateIntent(c *fiber.Ctx) error {
	var req paymentTypes.PaymentIntentRequest
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

	clientSecret, err := pc.Gateway.CreateIntent(req.AmountInCents, "usd")
	if err != nil {
		logger.Error("Failed to create payment intent", err)
		return c.Status(fiber.StatusBadGateway).JSON(types.ApiResponse{
			Status:  fiber.StatusBadGateway,
			Message: "Failed to create payment intent",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Payment intent created successfully",
		Data:    fiber.Map{"clientSecret": clientSecret},
	})
}
