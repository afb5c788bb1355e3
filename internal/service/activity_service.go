package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/spec-kit/account-service/internal/config"
	"github.com/spec-kit/account-service/internal/events"
	"github.com/spec-kit/account-service/internal/persistence"
	"github.com/spec-kit/account-service/internal/repository"
)

// ActivityService maintains the account activity trail: one audit row per
// significant account action, plus a capped recent-activity feed in Redis for
// the admin dashboard. Recording is best-effort; an audit failure never fails
// the request that triggered it.
type ActivityService struct {
	dispatcher events.Dispatcher
	activities repository.ActivityRepository
	redis      *persistence.Redis
	logger     *zap.Logger
	cfg        config.ActivityConfig
}

// NewActivityService creates the service.
func NewActivityService(dispatcher events.Dispatcher, activities repository.ActivityRepository, redis *persistence.Redis, logger *zap.Logger, cfg config.ActivityConfig) *ActivityService {
	return &ActivityService{
		dispatcher: dispatcher,
		activities: activities,
		redis:      redis,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to account events.
func (a *ActivityService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventUserRegistered, a.handle)
	a.dispatcher.Subscribe(events.EventUserLoggedIn, a.handle)
	a.dispatcher.Subscribe(events.EventProfileUpdated, a.handle)
	a.dispatcher.Subscribe(events.EventAdminPatched, a.handle)
}

// Recent returns the latest audit rows from the directory.
func (a *ActivityService) Recent(ctx context.Context, limit int) ([]repository.ActivityEntry, error) {
	return a.activities.Recent(ctx, limit)
}

func (a *ActivityService) handle(ctx context.Context, event events.Event) error {
	action := actionFor(event.Type)

	if a.activities != nil {
		if err := a.activities.Record(ctx, event.UserID, action); err != nil {
			a.logger.Warn("failed to record activity",
				zap.String("action", action),
				zap.Int64("user_id", int64(event.UserID)),
				zap.Error(err))
		}
	}

	a.pushRecent(ctx, event)
	return nil
}

func (a *ActivityService) pushRecent(ctx context.Context, event events.Event) {
	if a.redis == nil || a.redis.Client == nil {
		return
	}

	encoded, err := json.Marshal(event)
	if err != nil {
		a.logger.Warn("failed to encode activity event", zap.Error(err))
		return
	}

	pipe := a.redis.Client.Pipeline()
	pipe.LPush(ctx, a.cfg.RecentFeedKey, encoded)
	pipe.LTrim(ctx, a.cfg.RecentFeedKey, 0, a.cfg.RecentFeedSize-1)
	if _, err := pipe.Exec(ctx); err != nil {
		a.logger.Warn("failed to push activity feed", zap.Error(err))
	}
}

func actionFor(eventType events.EventType) string {
	switch eventType {
	case events.EventUserRegistered:
		return "signed up"
	case events.EventUserLoggedIn:
		return "logged in"
	case events.EventProfileUpdated:
		return "updated profile"
	case events.EventAdminPatched:
		return "patched by admin"
	default:
		return string(eventType)
	}
}
