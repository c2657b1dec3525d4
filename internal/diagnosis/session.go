package diagnosis

import (
	"cocoa/internal/types"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Session holds the state of one positive diagnosis submission: the processing number issued
// by the health authority and the date of symptom onset. The onset date is consumed by
// FilterTemporaryExposureKeys.
type Session struct {
	offsetDays int

	mu               sync.Mutex
	processingNumber string
	diagnosisDate    *time.Time
}

// NewSession creates a session whose key filter starts offsetDays from the diagnosis date.
// offsetDays is normally negative.
func NewSession(offsetDays int) *Session {
	return &Session{offsetDays: offsetDays}
}

func (s *Session) SetPositiveDiagnosis(number string) {
	s.mu.Lock()
	s.processingNumber = number
	s.mu.Unlock()
}

func (s *Session) PositiveDiagnosis() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processingNumber
}

func (s *Session) SetDiagnosisDate(date time.Time) {
	s.mu.Lock()
	s.diagnosisDate = &date
	s.mu.Unlock()
}

// DiagnosisDate returns the pending diagnosis date, if any.
func (s *Session) DiagnosisDate() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.diagnosisDate == nil {
		return time.Time{}, false
	}
	return *s.diagnosisDate, true
}

// FilterTemporaryExposureKeys keeps the keys whose rolling start is at or after the diagnosis
// date shifted by the offset, in input order. The diagnosis date is cleared whether or not the
// call succeeds; without one it fails with ErrInvalidState.
func (s *Session) FilterTemporaryExposureKeys(keys []types.TemporaryExposureKey) ([]types.TemporaryExposureKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.diagnosisDate = nil }()

	if s.diagnosisDate == nil {
		return nil, types.Err(types.ErrInvalidState, nil, "no diagnosis date set")
	}
	from := s.diagnosisDate.AddDate(0, 0, s.offsetDays)

	kept := make([]types.TemporaryExposureKey, 0, len(keys))
	for _, k := range keys {
		if !k.RollingStart.Before(from) {
			kept = append(kept, k)
		}
	}
	log.WithFields(log.Fields{"count": len(kept), "from": from}).Debug("filtered temporary exposure keys")
	return kept, nil
}
