package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sharafhazem/portfolio-ops/adapters/event"
	"github.com/sharafhazem/portfolio-ops/adapters/persistence"
	"github.com/sharafhazem/portfolio-ops/internal/domain/project"
)

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	cache       *persistence.RenderCache
	events      event.ContentEventPublisher
}

func NewDeleteProjectUseCase(pRepo project.Repository, cache *persistence.RenderCache, events event.ContentEventPublisher) *DeleteProjectUseCase {
	if events == nil {
		events = event.NopPublisher{}
	}
	return &DeleteProjectUseCase{projectRepo: pRepo, cache: cache, events: events}
}

type DeleteProjectInput struct {
	ProjectID uuid.UUID
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) error {
	if err := uc.projectRepo.Delete(ctx, input.ProjectID); err != nil {
		return fmt.Errorf("delete project failed: %w", err)
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}
	uc.events.PublishAsync(event.EventProjectDeleted, input.ProjectID.String())
	return nil
}
