// internal/app/poller.go
package app

import (
	"context"
	"fmt"
	"sync"

	"homework_notification_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// PollerService runs one poll cycle at a time: fetch statuses since the
// cursor, validate the response shape, notify on a status change, advance the
// cursor. It owns the only two pieces of state the service carries — the
// cursor timestamp and the last notified status. Neither survives a restart.
type PollerService struct {
	api      homework.API
	notifier Notifier
	logger   *logrus.Entry

	mu         sync.Mutex
	timestamp  int64
	lastStatus string
}

// NewPollerService builds a poller whose first request covers everything
// since startFrom (Unix seconds, normally "now" at startup).
func NewPollerService(api homework.API, notifier Notifier, logger *logrus.Logger, startFrom int64) *PollerService {
	return &PollerService{
		api:       api,
		notifier:  notifier,
		logger:    logger.WithField("component", "poller"),
		timestamp: startFrom,
	}
}

// RunCycle performs a single poll cycle. Every fault inside the cycle is
// absorbed here: it is logged, relayed through the notifier as
// "Сбой в работе программы: …", and leaves the cursor and the last notified
// status untouched so the next cycle retries the same window.
func (s *PollerService) RunCycle(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := s.api.FetchStatuses(ctx, s.timestamp)
	if err != nil {
		s.reportFailure(err)
		return
	}

	response, err := homework.CheckResponse(payload)
	if err != nil {
		s.reportFailure(err)
		return
	}

	if len(response.Homeworks) > 0 {
		first := response.Homeworks[0]
		newStatus, ok := homework.RawStatus(first)
		if ok && newStatus == s.lastStatus {
			s.logger.Debug("No new statuses")
		} else {
			message, err := homework.ParseStatus(first)
			if err != nil {
				s.reportFailure(err)
				return
			}
			// The last notified status updates once the notifier was invoked,
			// whether or not delivery itself succeeded.
			s.notifier.Notify(message)
			s.lastStatus = newStatus
			s.logger.WithField("status", newStatus).Info("Homework status change processed")
		}
	}

	s.timestamp = response.CurrentDate
}

func (s *PollerService) reportFailure(err error) {
	message := fmt.Sprintf("Сбой в работе программы: %v", err)
	s.logger.Error(message)
	s.notifier.Notify(message)
}
