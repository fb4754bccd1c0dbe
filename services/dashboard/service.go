package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"turfadmin/backend"
	"turfadmin/config"
	"turfadmin/models"
	"turfadmin/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const overviewCacheKey = "dashboard:overview"

// DashboardService serves the aggregate admin overview.
type DashboardService interface {
	Overview(ctx context.Context, sess *utils.AdminSession) (*models.DashboardData, error)
}

// DefaultDashboardService fetches the overview from the booking backend and
// keeps a short-lived snapshot in Redis so rapid page loads do not hammer the
// backend's aggregate query.
type DefaultDashboardService struct {
	Backend backend.API
	Cache   *redis.Client
}

// NewDashboardService constructs a DefaultDashboardService.
func NewDashboardService(api backend.API, cache *redis.Client) *DefaultDashboardService {
	return &DefaultDashboardService{Backend: api, Cache: cache}
}

func (s *DefaultDashboardService) Overview(ctx context.Context, sess *utils.AdminSession) (*models.DashboardData, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	data, err := s.Backend.Dashboard(ctx, sess.BackendToken)
	if err != nil {
		return nil, err
	}
	s.store(ctx, &data)
	return &data, nil
}

func (s *DefaultDashboardService) fromCache(ctx context.Context) *models.DashboardData {
	if s.Cache == nil {
		return nil
	}
	raw, err := s.Cache.Get(ctx, overviewCacheKey).Result()
	if err != nil {
		return nil
	}
	var data models.DashboardData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil
	}
	return &data
}

func (s *DefaultDashboardService) store(ctx context.Context, data *models.DashboardData) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return
	}
	ttl := time.Duration(config.AppConfig.DashboardCacheTTLSec) * time.Second
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if err := s.Cache.Set(ctx, overviewCacheKey, raw, ttl).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache dashboard snapshot", zap.Error(err))
	}
}
