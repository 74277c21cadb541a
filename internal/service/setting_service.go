package service

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sihs-edu/campus-backend/internal/config"
	"github.com/sihs-edu/campus-backend/internal/model"
	"github.com/sihs-edu/campus-backend/internal/repository"
)

// SettingService handles global site settings. The public settings map is
// cached in Redis since it is read on nearly every page load and changes
// rarely. The cache is invalidated on every update; a cold or unreachable
// cache falls through to the database.
type SettingService struct {
	repo *repository.SettingRepository
	rdb  *redis.Client
	cfg  *config.Config
	log  zerolog.Logger
}

// NewSettingService creates a new SettingService.
func NewSettingService(repo *repository.SettingRepository, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *SettingService {
	return &SettingService{
		repo: repo,
		rdb:  rdb,
		cfg:  cfg,
		log:  log.With().Str("component", "setting_service").Logger(),
	}
}

// GetAll returns all settings as a key-value map.
func (s *SettingService) GetAll(ctx context.Context) (map[string]string, error) {
	key := config.CacheKey.SiteSettingsKey()

	if cached, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
		var out map[string]string
		if err := json.Unmarshal(cached, &out); err == nil {
			return out, nil
		}
	}

	settings, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(settings))
	for _, st := range settings {
		out[st.Key] = st.Value
	}

	if payload, err := json.Marshal(out); err == nil {
		if err := s.rdb.Set(ctx, key, payload, s.cfg.SettingsCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("failed to cache settings")
		}
	}
	return out, nil
}

// Get returns a single setting.
func (s *SettingService) Get(ctx context.Context, key string) (*model.SiteSetting, error) {
	return s.repo.GetByKey(ctx, key)
}

// UpdateAll upserts the given settings and drops the cached map.
func (s *SettingService) UpdateAll(ctx context.Context, settings map[string]string) error {
	for key, value := range settings {
		if err := s.repo.Upsert(ctx, key, value); err != nil {
			return err
		}
	}

	if err := s.rdb.Del(ctx, config.CacheKey.SiteSettingsKey()).Err(); err != nil {
		s.log.Warn().Err(err).Msg("failed to invalidate settings cache")
	}
	return nil
}
