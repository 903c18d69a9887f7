package parcel

import (
	"errors"
	"fmt"
	"time"

	parcelModel "profast/models/parcel"
	riderModel "profast/models/rider"
	trackingModel "profast/models/tracking"

	"gorm.io/gorm"
)

var (
	ErrParcelNotFound   = errors.New("parcel not found")
	ErrRiderNotFound    = errors.New("rider not found")
	ErrInvalidStatus    = errors.New("invalid delivery status")
	ErrAlreadyCashedOut = errors.New("parcel already cashed out")
)

// LifecycleService owns the parcel state transitions and their cross-entity
// side effects: rider availability flips and tracking-event appends.
//
// Multi-step transitions issue sequential writes without a wrapping
// transaction; a failure between steps leaves the earlier write in place.
type LifecycleService struct {
	DB *gorm.DB
}

func NewLifecycleService(db *gorm.DB) *LifecycleService {
	return &LifecycleService{DB: db}
}

// Assign puts the parcel in rider_assigned, denormalizes the rider identity
// onto it, and marks the rider in_delivery.
func (s *LifecycleService) Assign(parcelID, riderID uint, updatedBy string) (*parcelModel.Parcel, error) {
	var p parcelModel.Parcel
	if err := s.DB.First(&p, parcelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParcelNotFound
		}
		return nil, err
	}

	var r riderModel.Rider
	if err := s.DB.First(&r, riderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRiderNotFound
		}
		return nil, err
	}

	p.DeliveryStatus = parcelModel.DeliveryStatusRiderAssigned
	p.AssignedRiderID = &r.ID
	p.AssignedRiderName = &r.Name
	p.AssignedRiderEmail = &r.Email
	if err := s.DB.Save(&p).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&riderModel.Rider{}).Where("id = ?", r.ID).
		Update("work_status", riderModel.WorkStatusInDelivery).Error; err != nil {
		// The parcel write already landed; surface the rider failure as-is.
		return nil, err
	}

	s.appendTrackingEvent(&p, string(parcelModel.DeliveryStatusRiderAssigned),
		fmt.Sprintf("Rider %s assigned", r.Name), updatedBy)

	return &p, nil
}

// UpdateDeliveryStatus sets the delivery status to any valid value. Ordering
// between stages is not enforced here; the coupling is in the side effects:
// in_transit stamps the pickup time, delivered stamps the delivery time and
// frees the assigned rider.
func (s *LifecycleService) UpdateDeliveryStatus(parcelID uint, status parcelModel.DeliveryStatus, updatedBy string) (*parcelModel.Parcel, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	var p parcelModel.Parcel
	if err := s.DB.First(&p, parcelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParcelNotFound
		}
		return nil, err
	}

	now := time.Now()
	p.DeliveryStatus = status

	switch status {
	case parcelModel.DeliveryStatusInTransit:
		p.PickedAt = &now
	case parcelModel.DeliveryStatusDelivered:
		p.DeliveredAt = &now
	}

	if err := s.DB.Save(&p).Error; err != nil {
		return nil, err
	}

	// A delivered parcel releases its rider. Parcels without an assigned
	// rider skip the reset silently.
	if status == parcelModel.DeliveryStatusDelivered && p.AssignedRiderID != nil {
		if err := s.DB.Model(&riderModel.Rider{}).Where("id = ?", *p.AssignedRiderID).
			Update("work_status", riderModel.WorkStatusAvailable).Error; err != nil {
			return nil, err
		}
	}

	s.appendTrackingEvent(&p, string(status), "", updatedBy)

	return &p, nil
}

// Cashout marks the parcel's earnings as collected by the rider. It is
// independent of the delivery status but refuses a second collection.
func (s *LifecycleService) Cashout(parcelID uint, updatedBy string) (*parcelModel.Parcel, error) {
	var p parcelModel.Parcel
	if err := s.DB.First(&p, parcelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParcelNotFound
		}
		return nil, err
	}

	if p.CashoutStatus == parcelModel.CashoutStatusCashedOut {
		return nil, ErrAlreadyCashedOut
	}

	now := time.Now()
	p.CashoutStatus = parcelModel.CashoutStatusCashedOut
	p.CashedOutAt = &now
	if err := s.DB.Save(&p).Error; err != nil {
		return nil, err
	}

	s.appendTrackingEvent(&p, "cashed_out", "", updatedBy)

	return &p, nil
}

// appendTrackingEvent writes one event row for parcels that carry a tracking
// id. Event failures are swallowed; the log is best effort relative to the
// lifecycle write that already landed.
func (s *LifecycleService) appendTrackingEvent(p *parcelModel.Parcel, status, details, updatedBy string) {
	if p.TrackingID == "" {
		return
	}

	ev := trackingModel.TrackingEvent{
		TrackingID: p.TrackingID,
		ParcelID:   &p.ID,
		Status:     status,
		Details:    details,
		UpdatedBy:  updatedBy,
	}
	s.DB.Create(&ev)
}
