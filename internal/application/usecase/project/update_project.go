package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sharafhazem/portfolio-ops/adapters/event"
	"github.com/sharafhazem/portfolio-ops/adapters/persistence"
	"github.com/sharafhazem/portfolio-ops/internal/domain/project"
	"github.com/sharafhazem/portfolio-ops/pkg/apperror"
)

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	cache       *persistence.RenderCache
	events      event.ContentEventPublisher
}

func NewUpdateProjectUseCase(pRepo project.Repository, cache *persistence.RenderCache, events event.ContentEventPublisher) *UpdateProjectUseCase {
	if events == nil {
		events = event.NopPublisher{}
	}
	return &UpdateProjectUseCase{projectRepo: pRepo, cache: cache, events: events}
}

type UpdateProjectInput struct {
	ProjectID uuid.UUID
	Patch     project.Patch
}

type UpdateProjectOutput struct {
	Project *project.Project
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	current, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	updated, err := project.ApplyPatch(current, input.Patch)
	if err != nil {
		return nil, apperror.NewInvalidInput("project patch rejected", err)
	}

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	if err := uc.projectRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("update project failed: %w", err)
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}
	uc.events.PublishAsync(event.EventProjectUpdated, updated.ID.String())

	return &UpdateProjectOutput{Project: updated}, nil
}
