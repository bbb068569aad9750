package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sharafhazem/portfolio-ops/internal/domain/profile"
	"github.com/sharafhazem/portfolio-ops/internal/domain/project"
	"github.com/sharafhazem/portfolio-ops/pkg/logger"
)

const (
	cacheKeyProfile  = "render:profile"
	cacheKeyProjects = "render:projects"

	// entries are rebuilt by the worker on content events; the TTL is only a
	// backstop against a dead worker serving stale content forever
	renderCacheTTL = 24 * time.Hour
)

// RenderCache keeps denormalized public payloads in Redis so the public
// renderer's reads skip Postgres. Content writes invalidate; the worker
// repopulates. Every method is best-effort: a cache failure is logged and the
// caller falls through to the store.
type RenderCache struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewRenderCache(rdb *redis.Client, log logger.Logger) *RenderCache {
	return &RenderCache{rdb: rdb, logger: log}
}

func (c *RenderCache) GetProfile(ctx context.Context) (*profile.Profile, bool) {
	raw, err := c.rdb.Get(ctx, cacheKeyProfile).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("render cache profile read failed", zap.Error(err))
		}
		return nil, false
	}

	p := &profile.Profile{}
	if err := json.Unmarshal(raw, p); err != nil {
		c.logger.Warn("render cache holds corrupt profile payload", zap.Error(err))
		return nil, false
	}
	p.Normalize()
	return p, true
}

func (c *RenderCache) SetProfile(ctx context.Context, p *profile.Profile) {
	raw, err := json.Marshal(p)
	if err != nil {
		c.logger.Warn("failed to marshal profile for render cache", zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, cacheKeyProfile, raw, renderCacheTTL).Err(); err != nil {
		c.logger.Warn("render cache profile write failed", zap.Error(err))
	}
}

func (c *RenderCache) GetProjects(ctx context.Context) ([]*project.Project, bool) {
	raw, err := c.rdb.Get(ctx, cacheKeyProjects).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("render cache projects read failed", zap.Error(err))
		}
		return nil, false
	}

	var projects []*project.Project
	if err := json.Unmarshal(raw, &projects); err != nil {
		c.logger.Warn("render cache holds corrupt projects payload", zap.Error(err))
		return nil, false
	}
	for _, p := range projects {
		p.Normalize()
	}
	return projects, true
}

func (c *RenderCache) SetProjects(ctx context.Context, projects []*project.Project) {
	raw, err := json.Marshal(projects)
	if err != nil {
		c.logger.Warn("failed to marshal projects for render cache", zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, cacheKeyProjects, raw, renderCacheTTL).Err(); err != nil {
		c.logger.Warn("render cache projects write failed", zap.Error(err))
	}
}

func (c *RenderCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, cacheKeyProfile, cacheKeyProjects).Err(); err != nil {
		c.logger.Warn("render cache invalidation failed", zap.Error(err))
	}
}
