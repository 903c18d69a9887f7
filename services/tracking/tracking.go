package tracking

import (
	"errors"
	"time"

	trackingModel "profast/models/tracking"

	"gorm.io/gorm"
)

var (
	ErrMissingTrackingID = errors.New("tracking_id is required")
	ErrMissingStatus     = errors.New("status is required")
)

// Service is the append-only tracking log. Events are stamped with the
// server's clock on insert and read back in chronological order.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// Append validates and inserts one tracking event.
func (s *Service) Append(ev trackingModel.TrackingEvent) (*trackingModel.TrackingEvent, error) {
	if ev.TrackingID == "" {
		return nil, ErrMissingTrackingID
	}
	if ev.Status == "" {
		return nil, ErrMissingStatus
	}

	ev.ID = 0
	ev.CreatedAt = time.Now()
	if err := s.DB.Create(&ev).Error; err != nil {
		return nil, err
	}

	return &ev, nil
}

// History returns the full chronological event list for a tracking id,
// oldest first.
func (s *Service) History(trackingID string) ([]trackingModel.TrackingEvent, error) {
	var events []trackingModel.TrackingEvent
	if err := s.DB.Where("tracking_id = ?", trackingID).
		Order("created_at ASC").Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}
