package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/scxttalex/areabooker/internal/analytics"
	repository "github.com/scxttalex/areabooker/internal/database/postgres"
	"github.com/scxttalex/areabooker/internal/database/redis"
	"github.com/scxttalex/areabooker/internal/entity"
	"github.com/scxttalex/areabooker/internal/timeutil"
)

type analyticsService struct {
	bookingRepo repository.BookingRepository
	areaRepo    repository.AreaRepository
	addonRepo   repository.AddonRepository
	userRepo    repository.UserRepository
	cache       *redis.CacheRepository
	pageSize    int
}

// NewAnalyticsService creates the analytics service. cache may be nil, in
// which case every dashboard request recomputes from the store.
func NewAnalyticsService(
	bookingRepo repository.BookingRepository,
	areaRepo repository.AreaRepository,
	addonRepo repository.AddonRepository,
	userRepo repository.UserRepository,
	cache *redis.CacheRepository,
	pageSize int,
) AnalyticsService {
	if pageSize <= 0 {
		pageSize = 2
	}
	return &analyticsService{
		bookingRepo: bookingRepo,
		areaRepo:    areaRepo,
		addonRepo:   addonRepo,
		userRepo:    userRepo,
		cache:       cache,
		pageSize:    pageSize,
	}
}

// GetDashboard serves a cached dashboard when the cache holds one and
// recomputes from a fresh snapshot otherwise. Cache failures degrade to
// recomputation, never to an error.
func (s *analyticsService) GetDashboard(ctx context.Context, g timeutil.Granularity) (*analytics.Dashboard, error) {
	if s.cache != nil {
		cached, err := s.cache.GetDashboard(ctx, g)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			logrus.Warnf("Failed to read dashboard cache: %v", err)
		}
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := analytics.BuildDashboard(snap, g, time.Now())

	if s.cache != nil {
		if err := s.cache.SetDashboard(ctx, dashboard); err != nil {
			logrus.Warnf("Failed to cache dashboard: %v", err)
		}
	}
	return &dashboard, nil
}

// GetDrilldown resolves the client's persisted view state, applies the
// request on top of it and pages the matching bookings. The state written
// back carries the clamped page, so a follow-up request lands where the
// listing actually left the client.
func (s *analyticsService) GetDrilldown(ctx context.Context, req *DrilldownRequest) (*analytics.DrilldownPage, error) {
	state := s.loadViewState(ctx, req.ClientID)

	if req.Granularity != "" {
		state.SetGranularity(timeutil.ParseGranularity(req.Granularity))
	}
	if req.AreaID != "" && req.AreaID != state.AreaID {
		state.SelectArea(req.AreaID)
	}
	if req.Page != nil {
		state.SetPage(*req.Page)
	}

	if state.AreaID == "" {
		return nil, fmt.Errorf("%w: no area selected", entity.ErrInvalidInput)
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	filter := analytics.ParsePaidFilter(req.PaidFilter)
	page := analytics.Drilldown(snap, state.Granularity, time.Now(), state.AreaID, filter, state.Page, s.pageSize)

	state.Page = page.Page
	s.saveViewState(ctx, req.ClientID, state)

	return &page, nil
}

// RefreshDashboards recomputes and caches dashboards for every
// granularity from one snapshot.
func (s *analyticsService) RefreshDashboards(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, g := range []timeutil.Granularity{
		timeutil.GranularityDaily,
		timeutil.GranularityWeekly,
		timeutil.GranularityMonthly,
		timeutil.GranularityYearly,
	} {
		dashboard := analytics.BuildDashboard(snap, g, now)
		if err := s.cache.SetDashboard(ctx, dashboard); err != nil {
			return fmt.Errorf("failed to cache %s dashboard: %w", g, err)
		}
	}
	return nil
}

// snapshot loads the full record set the aggregations run over.
func (s *analyticsService) snapshot(ctx context.Context) (analytics.Snapshot, error) {
	var snap analytics.Snapshot

	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return snap, fmt.Errorf("failed to load bookings: %w", err)
	}
	areas, err := s.areaRepo.GetAll(ctx)
	if err != nil {
		return snap, fmt.Errorf("failed to load areas: %w", err)
	}
	addons, err := s.addonRepo.GetAll(ctx)
	if err != nil {
		return snap, fmt.Errorf("failed to load addons: %w", err)
	}
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return snap, fmt.Errorf("failed to load users: %w", err)
	}

	snap.Bookings = deref(bookings)
	snap.Areas = deref(areas)
	snap.Addons = deref(addons)
	snap.Users = deref(users)
	return snap, nil
}

func (s *analyticsService) loadViewState(ctx context.Context, clientID string) analytics.ViewState {
	if s.cache == nil || clientID == "" {
		return analytics.NewViewState()
	}

	state, err := s.cache.GetViewState(ctx, clientID)
	if err != nil {
		if !errors.Is(err, redis.ErrCacheMiss) {
			logrus.Warnf("Failed to read view state: %v", err)
		}
		return analytics.NewViewState()
	}
	return state
}

func (s *analyticsService) saveViewState(ctx context.Context, clientID string, state analytics.ViewState) {
	if s.cache == nil || clientID == "" {
		return
	}
	if err := s.cache.SetViewState(ctx, clientID, state); err != nil {
		logrus.Warnf("Failed to save view state: %v", err)
	}
}

func deref[T any](in []*T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, *v)
	}
	return out
}
