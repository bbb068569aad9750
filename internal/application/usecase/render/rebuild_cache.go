package render

import (
	"context"
	"fmt"

	"github.com/sharafhazem/portfolio-ops/adapters/event"
	"github.com/sharafhazem/portfolio-ops/adapters/persistence"
	"github.com/sharafhazem/portfolio-ops/internal/domain/profile"
	"github.com/sharafhazem/portfolio-ops/internal/domain/project"
)

// RebuildCacheUseCase repopulates the render cache after a content change, so
// public reads keep hitting Redis instead of Postgres.
type RebuildCacheUseCase struct {
	profileRepo profile.Repository
	projectRepo project.Repository
	cache       *persistence.RenderCache
}

func NewRebuildCacheUseCase(profileRepo profile.Repository, projectRepo project.Repository, cache *persistence.RenderCache) *RebuildCacheUseCase {
	return &RebuildCacheUseCase{
		profileRepo: profileRepo,
		projectRepo: projectRepo,
		cache:       cache,
	}
}

func (uc *RebuildCacheUseCase) Execute(ctx context.Context, payload event.ContentEventPayload) error {
	switch payload.EventType {
	case event.EventProfileSynced:
		return uc.rebuildProfile(ctx)
	case event.EventProjectCreated, event.EventProjectUpdated, event.EventProjectDeleted:
		return uc.rebuildProjects(ctx)
	default:
		// unknown event types rebuild everything rather than being dropped
		if err := uc.rebuildProfile(ctx); err != nil {
			return err
		}
		return uc.rebuildProjects(ctx)
	}
}

func (uc *RebuildCacheUseCase) rebuildProfile(ctx context.Context) error {
	p, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("rebuild profile payload: %w", err)
	}
	uc.cache.SetProfile(ctx, p)
	return nil
}

func (uc *RebuildCacheUseCase) rebuildProjects(ctx context.Context) error {
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("rebuild projects payload: %w", err)
	}
	uc.cache.SetProjects(ctx, projects)
	return nil
}
