package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/console-service/internal/auth"
	"github.com/spec-kit/console-service/internal/domain"
	"github.com/spec-kit/console-service/internal/feed"
	"github.com/spec-kit/console-service/internal/repository"
	apperrors "github.com/spec-kit/console-service/pkg/util"
)

// FlagService is the feature flag registry. Flags are created disabled;
// toggling sets enabled to a caller-supplied value rather than flipping,
// so repeated toggles with the same value converge. Every successful
// write pushes the full flag collection to feed subscribers.
type FlagService struct {
	flags  repository.FlagRepository
	feed   feed.Feed
	logger *zap.Logger
}

// NewFlagService constructs the service.
func NewFlagService(flags repository.FlagRepository, changeFeed feed.Feed, logger *zap.Logger) *FlagService {
	return &FlagService{flags: flags, feed: changeFeed, logger: logger}
}

// CreateFeatureFlag inserts a disabled flag and notifies subscribers.
func (s *FlagService) CreateFeatureFlag(ctx context.Context, caller domain.Principal, name, description string) (string, error) {
	if err := auth.Authorize(auth.OpCreateFeatureFlag, caller.Role); err != nil {
		return "", err
	}

	flag := &domain.FeatureFlag{
		Name:        name,
		Description: description,
		Enabled:     false,
	}
	if err := s.flags.Create(ctx, flag); err != nil {
		s.logger.Error("create feature flag failed", zap.String("name", name), zap.Error(err))
		return "", apperrors.NewInternalError(err)
	}

	s.publishSnapshot(ctx)
	return fmt.Sprintf("Feature flag %q created successfully.", name), nil
}

// ToggleFeatureFlag sets a flag's enabled value and notifies subscribers.
func (s *FlagService) ToggleFeatureFlag(ctx context.Context, caller domain.Principal, id string, enabled bool) (string, error) {
	if err := auth.Authorize(auth.OpToggleFeatureFlag, caller.Role); err != nil {
		return "", err
	}

	if err := s.flags.SetEnabled(ctx, id, enabled); err != nil {
		s.logger.Error("toggle feature flag failed", zap.String("flag_id", id), zap.Error(err))
		return "", apperrors.NewInternalError(err)
	}

	s.publishSnapshot(ctx)
	return "Feature flag toggled successfully.", nil
}

// publishSnapshot pushes the full current collection to the feed. The
// write itself already succeeded; a publish failure costs subscribers one
// update, and the next write carries complete state, so it is logged and
// not surfaced.
func (s *FlagService) publishSnapshot(ctx context.Context) {
	flags, err := s.flags.List(ctx)
	if err != nil {
		s.logger.Warn("feed snapshot read failed", zap.Error(err))
		return
	}
	snapshot := feed.Snapshot{
		Collection:  feed.CollectionFeatureFlags,
		Flags:       flags,
		PublishedAt: time.Now(),
	}
	if err := s.feed.Publish(ctx, snapshot); err != nil {
		s.logger.Warn("feed publish failed", zap.Error(err))
	}
}
