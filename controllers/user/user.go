package user

import (
	"errors"
	"time"

	"profast/logger"
	userModel "profast/models/user"
	"profast/types"
	userTypes "profast/types/user"
	"profast/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserController handles account upserts, role management and search.
type UserController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewUserController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *UserController {
	return &UserController{DB: db, Logger: asyncLogger}
}

// Login upserts the user record on authenticated contact: unseen emails are
// inserted with the user role, seen emails only get their last-login
// timestamp refreshed. The role is never touched here.
func (uc *UserController) Login(c *fiber.Ctx) error {
	var req userTypes.LoginRequest
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

	now := time.Now()

	var u userModel.User
	err := uc.DB.Where("email = ?", req.Email).First(&u).Error
	switch {
	case err == nil:
		if err := uc.DB.Model(&u).Update("last_logged_in", now).Error; err != nil {
			logger.Error("Failed to refresh last login", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to update user",
			})
		}
		u.LastLoggedIn = now

		return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
			Status:  fiber.StatusOK,
			Message: "Login recorded",
			Data:    u,
		})

	case errors.Is(err, gorm.ErrRecordNotFound):
		u = userModel.User{
			Email:        req.Email,
			Name:         req.Name,
			Role:         userModel.RoleUser,
			LastLoggedIn: now,
		}
		if err := uc.DB.Create(&u).Error; err != nil {
			logger.Error("Failed to create user", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to create user",
			})
		}

		logger.Success("User created on first contact: " + u.Email)
		uc.Logger.Log(utils.CreateLogEntry(c))

		return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
			Status:  fiber.StatusCreated,
			Message: "User created successfully",
			Data:    u,
		})

	default:
		logger.Error("Failed to look up user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
}

// Search matches users by partial email, case-insensitive, capped at 10
// results. Riders are excluded from this search.
func (uc *UserController) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "q is required",
		})
	}

	var users []userModel.User
	if err := uc.DB.Where("LOWER(email) LIKE LOWER(?) AND role IN ?", "%"+q+"%",
		[]userModel.Role{userModel.RoleAdmin, userModel.RoleUser}).
		Limit(10).Find(&users).Error; err != nil {
		logger.Error("Failed to search users", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to search users",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Users fetched successfully",
		Data:    users,
	})
}

// GetRole returns the role for an email, defaulting to user when the account
// is unknown.
func (uc *UserController) GetRole(c *fiber.Ctx) error {
	email := c.Params("email")

	u, err := utils.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
				Status:  fiber.StatusOK,
				Message: "Role fetched successfully",
				Data:    fiber.Map{"role": userModel.RoleUser},
			})
		}
		logger.Error("Failed to fetch user role", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch role",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Role fetched successfully",
		Data:    fiber.Map{"role": u.Role},
	})
}

// UpdateRole sets a user's role. Admin-only.
func (uc *UserController) UpdateRole(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user id",
		})
	}

	var req userTypes.RoleUpdateRequest
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

	res := uc.DB.Model(&userModel.User{}).Where("id = ?", id).Update("role", req.Role)
	if res.Error != nil {
		logger.Error("Failed to update user role", res.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update role",
		})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "User not found",
		})
	}

	logger.Success("User role updated")
	uc.Logger.Log(utils.CreateLogEntry(c))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Role updated successfully",
	})
}
