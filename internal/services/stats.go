package services

//go:generate mockgen -source=stats.go -destination=mock_stats.go -package=services

import (
	"context"
	"time"

	"github.com/sbilibin2017/prompt-gallery/internal/logger"
	"github.com/sbilibin2017/prompt-gallery/internal/models"
)

const recentWindow = 7 * 24 * time.Hour

// EmailCounter counts email submissions.
type EmailCounter interface {
	Count(ctx context.Context) (int, error)
}

// StatsService summarises the collection for the admin dashboard.
type StatsService struct {
	snapshots ArtworkSnapshotter
	emails    EmailCounter
	now       func() time.Time
}

func NewStatsService(snapshots ArtworkSnapshotter, emails EmailCounter) *StatsService {
	return &StatsService{snapshots: snapshots, emails: emails, now: time.Now}
}

// Stats counts records by status, sums likes and counts uploads of the last seven days.
func (svc *StatsService) Stats(ctx context.Context) (models.Stats, error) {
	records := svc.snapshots.Snapshot()
	since := svc.now().Add(-recentWindow)

	stats := models.Stats{TotalArtworks: len(records)}
	for _, a := range records {
		switch a.Status.Effective() {
		case models.StatusPending:
			stats.Pending++
		case models.StatusApproved:
			stats.Approved++
		case models.StatusRejected:
			stats.Rejected++
		}
		stats.TotalLikes += a.Likes
		if a.CreatedAt != nil && a.CreatedAt.After(since) {
			stats.RecentUploads++
		}
	}

	if svc.emails != nil {
		count, err := svc.emails.Count(ctx)
		if err != nil {
			logger.Log.Errorw("failed to count emails", "error", err)
			return models.Stats{}, err
		}
		stats.TotalEmails = count
	}

	return stats, nil
}
