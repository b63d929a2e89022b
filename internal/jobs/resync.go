// Package jobs holds periodic background work.
package jobs

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/sbilibin2017/prompt-gallery/internal/logger"
)

// Refresher reloads a cached view of the database.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// ScheduleResync reloads the artwork collection on schedule so that writes
// made by other instances or galleryctl reach this process even without Kafka.
// The cron stops when ctx is cancelled.
func ScheduleResync(ctx context.Context, schedule string, r Refresher) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if err := r.Refresh(ctx); err != nil {
			logger.Log.Warnw("scheduled resync failed", "error", err)
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()

	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
	}()
	return c, nil
}
