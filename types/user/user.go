package user

import (
	"fmt"

	userModel "profast/models/user"
)

type LoginRequest struct {
	Email string `json:"email" validate:"required"`
	Name  string `json:"name"`
}

// Validate validates the LoginRequest fields
func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}

type RoleUpdateRequest struct {
	Role userModel.Role `json:"role" validate:"required"`
}

// Validate validates the RoleUpdateRequest fields
func (r *RoleUpdateRequest) Validate() error {
	if r.Role == "" {
		return fmt.Errorf("role is required")
	}
	if !r.Role.IsValid() {
		return fmt.Errorf("role must be one of user, admin, rider")
	}
	return nil
}
