package tracking

import (
	"fmt"
)

type TrackingCreateRequest struct {
	TrackingID string `json:"tracking_id" validate:"required"`
	ParcelID   *uint  `json:"parcel_id"`
	Status     string `json:"status" validate:"required"`
	Details    string `json:"details"`
	UpdatedBy  string `json:"updated_by"`
}

// Validate validates the TrackingCreateRequest fields
func (r *TrackingCreateRequest) Validate() error {
	if r.TrackingID == "" {
		return fmt.Errorf("tracking_id is required")
	}
	if r.Status == "" {
		return fmt.Errorf("status is required")
	}
	return nil
}
