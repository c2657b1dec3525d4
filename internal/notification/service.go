package notification

import (
	"cocoa/internal/ports"
	"cocoa/internal/types"
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Service is the view-model facing wrapper around the OS exposure notification capability.
// It remembers the last status it observed.
type Service struct {
	notifier ports.ExposureNotifier

	mu     sync.RWMutex
	status types.NotificationStatus
}

func NewService(notifier ports.ExposureNotifier) *Service {
	return &Service{notifier: notifier, status: types.StatusUnknown}
}

// FetchExposureKeys asks the platform to download diagnosis keys and run detection.
func (s *Service) FetchExposureKeys(ctx context.Context) error {
	if err := s.notifier.FetchKeysFromServer(ctx); err != nil {
		log.WithError(err).Error("fetching exposure keys failed")
		return err
	}
	return nil
}

// StartExposureNotification starts the platform service unless it already runs. Failures are
// logged and reported as false.
func (s *Service) StartExposureNotification(ctx context.Context) bool {
	enabled, err := s.notifier.IsEnabled(ctx)
	if err == nil && !enabled {
		err = s.notifier.Start(ctx)
	}
	if err != nil {
		log.WithError(err).Error("error enabling notifications")
		return false
	}
	return true
}

// StopExposureNotification stops the platform service if it runs. Failures are logged and
// reported as false.
func (s *Service) StopExposureNotification(ctx context.Context) bool {
	enabled, err := s.notifier.IsEnabled(ctx)
	if err == nil && enabled {
		err = s.notifier.Stop(ctx)
	}
	if err != nil {
		log.WithError(err).Error("error disabling notifications")
		return false
	}
	return true
}

// UpdateStatusMessage refreshes the status from the platform and returns its message.
// When the platform cannot be queried the status becomes unknown.
func (s *Service) UpdateStatusMessage(ctx context.Context) string {
	status, err := s.notifier.Status(ctx)
	if err != nil {
		log.WithError(err).Warn("reading exposure notification status failed")
		status = types.StatusUnknown
	}
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
	log.WithField("status", status.String()).Debug("exposure notification status updated")
	return messageFor(status)
}

// Status is the last status seen by UpdateStatusMessage.
func (s *Service) Status() types.NotificationStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Service) CurrentStatusMessage() string {
	return messageFor(s.Status())
}

func messageFor(status types.NotificationStatus) string {
	if m, ok := types.StatusMessageMap[status]; ok {
		return m
	}
	return types.StatusMessageMap[types.StatusUnknown]
}
