package schedule

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// Refresher is the part of the screen the scheduler drives
type Refresher interface {
	Refresh() bool
}

// RefreshScheduler re-fetches the shown forecast on a cron expression
type RefreshScheduler struct {
	cron           *cron.Cron
	refresher      Refresher
	cronExpression string
}

func NewRefreshScheduler(refresher Refresher, cronExpression string) *RefreshScheduler {
	return &RefreshScheduler{
		cron:           cron.New(),
		refresher:      refresher,
		cronExpression: cronExpression,
	}
}

// InitRefreshScheduleTasks registers the refresh job and starts the cron. An empty expression
// disables the schedule; an invalid one is returned as an error.
func (s *RefreshScheduler) InitRefreshScheduleTasks() error {
	if s.cronExpression == "" {
		log.Info(msg.GetMessage("refresh.disabled"))
		return nil
	}

	if _, err := s.cron.AddFunc(s.cronExpression, s.ExecuteScheduledTask); err != nil {
		log.Error(msg.GetMessage("refresh.invalid-cron", s.cronExpression, err))
		return fmt.Errorf("invalid refresh cron expression %q: %w", s.cronExpression, err)
	}

	s.cron.Start()
	log.Info(msg.GetMessage("refresh.started", s.cronExpression))
	return nil
}

// ExecuteScheduledTask asks the screen for a background refresh
func (s *RefreshScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()

	log.Info(msg.GetMessage("refresh.start"), zap.String("request_id", requestID))
	if !s.refresher.Refresh() {
		log.Info(msg.GetMessage("refresh.skipped"), zap.String("request_id", requestID))
	}
}

// Stop gracefully stops the scheduler
func (s *RefreshScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
