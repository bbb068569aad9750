package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sharafhazem/portfolio-ops/adapters/event"
	"github.com/sharafhazem/portfolio-ops/adapters/persistence"
	"github.com/sharafhazem/portfolio-ops/internal/domain/project"
)

type CreateProjectUseCase struct {
	projectRepo project.Repository
	cache       *persistence.RenderCache
	events      event.ContentEventPublisher
}

func NewCreateProjectUseCase(pRepo project.Repository, cache *persistence.RenderCache, events event.ContentEventPublisher) *CreateProjectUseCase {
	if events == nil {
		events = event.NopPublisher{}
	}
	return &CreateProjectUseCase{projectRepo: pRepo, cache: cache, events: events}
}

type CreateProjectInput struct {
	Title             string
	Category          string
	Images            []string
	Desc              string
	Tech              []string
	ClientName        string
	Timeline          string
	RoleStack         string
	CoreChallenge     string
	TechnicalSolution string
	Links             project.Links
}

type CreateProjectOutput struct {
	Project *project.Project
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	newProject := &project.Project{
		ID:                uuid.New(),
		Title:             input.Title,
		Category:          input.Category,
		Images:            input.Images,
		Desc:              input.Desc,
		Tech:              input.Tech,
		ClientName:        input.ClientName,
		Timeline:          input.Timeline,
		RoleStack:         input.RoleStack,
		CoreChallenge:     input.CoreChallenge,
		TechnicalSolution: input.TechnicalSolution,
		Links:             input.Links,
		CreatedAt:         time.Now().UTC(),
	}
	newProject.Normalize()

	if err := newProject.Validate(); err != nil {
		return nil, err
	}

	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		return nil, fmt.Errorf("save project failed: %w", err)
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}
	uc.events.PublishAsync(event.EventProjectCreated, newProject.ID.String())

	return &CreateProjectOutput{Project: newProject}, nil
}
