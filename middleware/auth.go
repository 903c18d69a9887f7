package middleware

import (
	"errors"
	"strings"

	"profast/logger"
	userModel "profast/models/user"
	"profast/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const subjectLocalKey = "subject"

// Auth bundles the per-route guards. Routes declare the ordered subset they
// need; guards short-circuit on the first failure.
type Auth struct {
	db       *gorm.DB
	verifier TokenVerifier
}

func NewAuth(db *gorm.DB, verifier TokenVerifier) *Auth {
	return &Auth{db: db, verifier: verifier}
}

// SubjectFrom returns the verified subject a RequireAuth guard attached to
// the request context.
func SubjectFrom(c *fiber.Ctx) (Subject, bool) {
	subject, ok := c.Locals(subjectLocalKey).(Subject)
	return subject, ok
}

// RequireAuth validates the bearer credential and attaches the verified
// subject to the request context.
func (a *Auth) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Authorization token missing",
				Status:  fiber.StatusUnauthorized,
			})
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Invalid authorization header format",
				Status:  fiber.StatusUnauthorized,
			})
		}

		subject, err := a.verifier.Verify(tokenParts[1])
		if err != nil {
			logger.Error("Token verification failed", err)
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Invalid or expired token",
				Status:  fiber.StatusUnauthorized,
			})
		}

		c.Locals(subjectLocalKey, subject)
		return c.Next()
	}
}

// RequireSubjectMatch compares the uid query parameter against the verified
// subject. It stops a valid credential holder from reading another
// principal's resources by editing the query string.
func (a *Auth) RequireSubjectMatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		subject, ok := SubjectFrom(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Authorization token missing",
				Status:  fiber.StatusUnauthorized,
			})
		}

		uid := c.Query("uid")
		if uid == "" || uid != subject.UID {
			return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
				Message: "Forbidden access",
				Status:  fiber.StatusForbidden,
			})
		}

		return c.Next()
	}
}

// RequireRole looks up the user record for the caller-supplied email and
// requires role membership. The lookup hits the database on every request.
func (a *Auth) RequireRole(role userModel.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Query("email")
		if email == "" {
			return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
				Message: "Forbidden access",
				Status:  fiber.StatusForbidden,
			})
		}

		var u userModel.User
		if err := a.db.Where("email = ?", email).First(&u).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Error("Failed to look up user for role guard", err)
			}
			return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
				Message: "Forbidden access",
				Status:  fiber.StatusForbidden,
			})
		}

		if u.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
				Message: "Forbidden access",
				Status:  fiber.StatusForbidden,
			})
		}

		return c.Next()
	}
}

// RequireAdmin guards admin-only routes.
func (a *Auth) RequireAdmin() fiber.Handler {
	return a.RequireRole(userModel.RoleAdmin)
}

// RequireRider guards rider-only routes.
func (a *Auth) RequireRider() fiber.Handler {
	return a.RequireRole(userModel.RoleRider)
}
