package rider

import (
	"errors"

	riderModel "profast/models/rider"
	userModel "profast/models/user"

	"gorm.io/gorm"
)

var ErrRiderNotFound = errors.New("rider not found")

// Service handles the rider approval lifecycle. Activating an application is
// the only path that promotes the linked user account to the rider role.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// SetStatus updates a rider's approval status. Transitioning into active
// makes the rider available for work and promotes the linked user to the
// rider role; deactivating takes the rider off the road.
func (s *Service) SetStatus(riderID uint, status riderModel.Status) (*riderModel.Rider, error) {
	var r riderModel.Rider
	if err := s.DB.First(&r, riderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRiderNotFound
		}
		return nil, err
	}

	activating := status == riderModel.StatusActive && r.Status != riderModel.StatusActive

	r.Status = status
	switch {
	case activating:
		// Only a real transition resets work status. Re-activating an
		// already-active rider must not pull them out of a live delivery.
		r.WorkStatus = riderModel.WorkStatusAvailable
	case status == riderModel.StatusDeactivated:
		r.WorkStatus = riderModel.WorkStatusNotAvailable
	}

	if err := s.DB.Save(&r).Error; err != nil {
		return nil, err
	}

	if activating {
		// Second independent write, no transaction: a failure here leaves
		// an active rider whose user account was not promoted.
		if err := s.DB.Model(&userModel.User{}).Where("email = ?", r.Email).
			Update("role", userModel.RoleRider).Error; err != nil {
			return nil, err
		}
	}

	return &r, nil
}
