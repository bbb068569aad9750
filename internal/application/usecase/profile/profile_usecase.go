package profile

import (
	"context"
	"fmt"

	"github.com/sharafhazem/portfolio-ops/adapters/event"
	"github.com/sharafhazem/portfolio-ops/adapters/persistence"
	"github.com/sharafhazem/portfolio-ops/internal/domain/profile"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	cache       *persistence.RenderCache
	events      event.ContentEventPublisher
}

// cache and events may be nil when Redis/Kafka are not configured; the use
// case degrades to plain store reads and writes.
func NewProfileUseCase(repo profile.Repository, cache *persistence.RenderCache, events event.ContentEventPublisher) *ProfileUseCase {
	if events == nil {
		events = event.NopPublisher{}
	}
	return &ProfileUseCase{
		profileRepo: repo,
		cache:       cache,
		events:      events,
	}
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context) (*GetProfileOutput, error) {
	if uc.cache != nil {
		if cached, ok := uc.cache.GetProfile(ctx); ok {
			return &GetProfileOutput{Profile: cached}, nil
		}
	}

	p, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}

	if uc.cache != nil {
		uc.cache.SetProfile(ctx, p)
	}
	return &GetProfileOutput{Profile: p}, nil
}

type UpdateProfileInput struct {
	Patch profile.Patch
}

type UpdateProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	p, err := uc.profileRepo.ApplyPatch(ctx, input.Patch)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}
	uc.events.PublishAsync(event.EventProfileSynced, "")

	return &UpdateProfileOutput{Profile: p}, nil
}
