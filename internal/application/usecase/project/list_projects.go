package project

import (
	"context"

	"github.com/sharafhazem/portfolio-ops/adapters/persistence"
	"github.com/sharafhazem/portfolio-ops/internal/domain/project"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
	cache       *persistence.RenderCache
}

func NewListProjectsUseCase(pRepo project.Repository, cache *persistence.RenderCache) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: pRepo, cache: cache}
}

type ListProjectsOutput struct {
	Projects []*project.Project
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context) (*ListProjectsOutput, error) {
	if uc.cache != nil {
		if cached, ok := uc.cache.GetProjects(ctx); ok {
			return &ListProjectsOutput{Projects: cached}, nil
		}
	}

	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.SetProjects(ctx, projects)
	}
	return &ListProjectsOutput{Projects: projects}, nil
}
