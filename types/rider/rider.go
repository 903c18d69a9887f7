package rider

import (
	"fmt"

	riderModel "profast/models/rider"
)

type RiderApplyRequest struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required"`
	Phone            string `json:"phone"`
	Age              int    `json:"age"`
	NID              string `json:"nid"`
	District         string `json:"district" validate:"required"`
	BikeBrand        string `json:"bike_brand"`
	BikeRegistration string `json:"bike_registration"`
}

// Validate validates the RiderApplyRequest fields
func (r *RiderApplyRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.District == "" {
		return fmt.Errorf("district is required")
	}
	return nil
}

type RiderStatusRequest struct {
	Status riderModel.Status `json:"status" validate:"required"`
}

// Validate validates the RiderStatusRequest fields
func (r *RiderStatusRequest) Validate() error {
	if r.Status == "" {
		return fmt.Errorf("status is required")
	}
	if !r.Status.IsValid() {
		return fmt.Errorf("status must be one of pending, active, deactivated")
	}
	return nil
}
