package parcel

import (
	"fmt"

	parcelModel "profast/models/parcel"
)

type ParcelCreateRequest struct {
	Title            string  `json:"title" validate:"required"`
	ParcelType       string  `json:"parcel_type"`
	WeightKG         float64 `json:"weight_kg"`
	Cost             float64 `json:"cost"`
	SenderDistrict   string  `json:"sender_district"`
	ReceiverDistrict string  `json:"receiver_district"`
	ReceiverName     string  `json:"receiver_name"`
	ReceiverPhone    string  `json:"receiver_phone"`
	CreatedBy        string  `json:"created_by" validate:"required"`
}

// Validate validates the ParcelCreateRequest fields
func (r *ParcelCreateRequest) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.CreatedBy == "" {
		return fmt.Errorf("created_by is required")
	}
	return nil
}

type AssignRiderRequest struct {
	RiderID uint `json:"rider_id" validate:"required"`
}

// Validate validates the AssignRiderRequest fields
func (r *AssignRiderRequest) Validate() error {
	if r.RiderID == 0 {
		return fmt.Errorf("rider_id is required")
	}
	return nil
}

type StatusUpdateRequest struct {
	Status parcelModel.DeliveryStatus `json:"status" validate:"required"`
}

// Validate validates the StatusUpdateRequest fields
func (r *StatusUpdateRequest) Validate() error {
	if r.Status == "" {
		return fmt.Errorf("status is required")
	}
	if !r.Status.IsValid() {
		return fmt.Errorf("status must be one of pending, rider_assigned, in_transit, delivered, wirehouse_delivered")
	}
	return nil
}
