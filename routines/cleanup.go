package routines

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ExpiredDeleter removes expired rows and reports how many went away.
type ExpiredDeleter interface {
	DeleteExpired(now time.Time) (int, error)
}

// StartCleanupRoutine runs one sweep immediately and then on schedule. Stop the
// returned cron to end it.
func StartCleanupRoutine(store ExpiredDeleter, schedule string, log *zap.Logger) (*cron.Cron, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("cleanup")

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { cleanupRoutine(store, log) }); err != nil {
		return nil, fmt.Errorf("schedule cleanup %q: %w", schedule, err)
	}
	go cleanupRoutine(store, log)
	c.Start()
	log.Info("cleanup scheduled", zap.String("schedule", schedule))
	return c, nil
}

func cleanupRoutine(store ExpiredDeleter, log *zap.Logger) {
	n, err := store.DeleteExpired(time.Now())
	if err != nil {
		log.Error("cleanup failed", zap.Error(err))
		return
	}
	if n > 0 {
		log.Info("cleanup finished", zap.Int("deleted", n))
	}
}
