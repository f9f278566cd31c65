// Redis-backed cache for computed dashboards and per-client analytics
// view state.
package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/scxttalex/areabooker/internal/analytics"
	"github.com/scxttalex/areabooker/internal/timeutil"
)

// ErrCacheMiss is returned when a key is absent; callers recompute.
var ErrCacheMiss = redis.Nil

type CacheRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheRepository(client *redis.Client, ttl time.Duration) *CacheRepository {
	return &CacheRepository{
		client: client,
		ttl:    ttl,
	}
}

func dashboardKey(g timeutil.Granularity) string {
	return "analytics:dashboard:" + string(g)
}

// SetDashboard stores a computed dashboard for its granularity. Dashboards
// are snapshots of a moment; the TTL bounds staleness between refreshes.
func (r *CacheRepository) SetDashboard(ctx context.Context, d analytics.Dashboard) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, dashboardKey(d.Granularity), data, r.ttl).Err()
}

func (r *CacheRepository) GetDashboard(ctx context.Context, g timeutil.Granularity) (*analytics.Dashboard, error) {
	data, err := r.client.Get(ctx, dashboardKey(g)).Result()
	if err != nil {
		return nil, err
	}

	var d analytics.Dashboard
	err = json.Unmarshal([]byte(data), &d)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// InvalidateDashboards drops every cached granularity after a write to the
// booking records.
func (r *CacheRepository) InvalidateDashboards(ctx context.Context) error {
	keys := make([]string, 0, 4)
	for _, g := range []timeutil.Granularity{
		timeutil.GranularityDaily,
		timeutil.GranularityWeekly,
		timeutil.GranularityMonthly,
		timeutil.GranularityYearly,
	} {
		keys = append(keys, dashboardKey(g))
	}
	return r.client.Del(ctx, keys...).Err()
}

func viewStateKey(clientID string) string {
	return "analytics:view:" + clientID
}

// SetViewState persists a client's analytics view state so granularity and
// area changes can reset pagination across stateless requests.
func (r *CacheRepository) SetViewState(ctx context.Context, clientID string, state analytics.ViewState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, viewStateKey(clientID), data, r.ttl).Err()
}

func (r *CacheRepository) GetViewState(ctx context.Context, clientID string) (analytics.ViewState, error) {
	data, err := r.client.Get(ctx, viewStateKey(clientID)).Result()
	if err != nil {
		return analytics.NewViewState(), err
	}

	var state analytics.ViewState
	err = json.Unmarshal([]byte(data), &state)
	if err != nil {
		return analytics.NewViewState(), err
	}

	return state, nil
}
