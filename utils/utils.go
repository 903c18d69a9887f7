package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"profast/database"
	userModel "profast/models/user"
	"profast/types"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateTrackingID produces a customer-facing tracking identifier, e.g.
// PCL-20260831-9F4C21AB. The uuid fragment keeps it unguessable without
// a round trip to the database.
func GenerateTrackingID() string {
	fragment := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("PCL-%s-%s", time.Now().Format("20060102"), fragment)
}

// ErrUserNotFound is returned by GetUserByEmail when no account matches.
var ErrUserNotFound = errors.New("user not found")

// GetUserByEmail retrieves a user by email from the database.
func GetUserByEmail(email string) (*userModel.User, error) {
	if email == "" {
		return nil, errors.New("email cannot be empty")
	}

	var u userModel.User
	if err := database.DB.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &u, nil
}

// CreateLogEntry builds a request log entry from the current request state.
// Bodies are deep copied so the entry stays valid after fiber recycles the
// context.
func CreateLogEntry(c *fiber.Ctx) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := string(append([]byte(nil), c.Body()...))
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	return types.LogEntry{
		Method:       method,
		URL:          url,
		RequestBody:  requestBody,
		ResponseBody: responseBody,
		StatusCode:   c.Response().StatusCode(),
		CreatedAt:    time.Now(),
	}
}
