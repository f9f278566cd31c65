package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/scxttalex/areabooker/internal/service"
)

// DashboardRefreshWorker recomputes the analytics dashboards on an
// interval so reads after a cache expiry do not pay the aggregation cost.
type DashboardRefreshWorker struct {
	analyticsService service.AnalyticsService
	interval         time.Duration
}

func NewDashboardRefreshWorker(analyticsService service.AnalyticsService, interval time.Duration) *DashboardRefreshWorker {
	return &DashboardRefreshWorker{
		analyticsService: analyticsService,
		interval:         interval,
	}
}

func (w *DashboardRefreshWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logrus.Info("Dashboard refresh worker started")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Dashboard refresh worker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *DashboardRefreshWorker) refresh(ctx context.Context) {
	start := time.Now()

	if err := w.analyticsService.RefreshDashboards(ctx); err != nil {
		logrus.Errorf("Failed to refresh dashboards: %v", err)
		return
	}

	logrus.WithField("duration", time.Since(start)).Info("Dashboards refreshed")
}
