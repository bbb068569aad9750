package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sharafhazem/portfolio-ops/internal/domain/profile"
	"github.com/sharafhazem/portfolio-ops/pkg/apperror"
	"github.com/sharafhazem/portfolio-ops/pkg/logger"
)

// The profile table holds at most one row, pinned to this key by a CHECK
// constraint in the schema. Upsert-on-read keeps cardinality at exactly one.
const profileSingletonKey = 1

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func (r *postgresProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	p, found, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if found {
		return p, nil
	}
	return r.createDefault(ctx)
}

func (r *postgresProfileRepo) ApplyPatch(ctx context.Context, patch profile.Patch) (*profile.Profile, error) {
	current, found, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		current = profile.Default(time.Now().UTC())
	}

	merged, err := profile.Merge(current, patch)
	if err != nil {
		return nil, apperror.NewInvalidInput("profile patch rejected", err)
	}
	merged.LastSync = time.Now().UTC()

	if err := r.store(ctx, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func (r *postgresProfileRepo) load(ctx context.Context) (*profile.Profile, bool, error) {
	query := `SELECT doc FROM profiles WHERE id = $1`

	var docBytes []byte
	err := r.db.QueryRow(ctx, query, profileSingletonKey).Scan(&docBytes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, apperror.NewInternal("failed to query profile", err)
	}

	p := &profile.Profile{}
	if err := json.Unmarshal(docBytes, p); err != nil {
		return nil, false, apperror.NewInternal("stored profile document is corrupt", err)
	}
	p.Normalize()
	return p, true, nil
}

func (r *postgresProfileRepo) createDefault(ctx context.Context) (*profile.Profile, error) {
	def := profile.Default(time.Now().UTC())
	docBytes, err := json.Marshal(def)
	if err != nil {
		return nil, apperror.NewInternal("failed to marshal default profile", err)
	}

	// ON CONFLICT DO NOTHING: a concurrent first read may have won the race,
	// in which case the stored document is the one to return.
	query := `
		INSERT INTO profiles (id, doc, last_sync)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, profileSingletonKey, docBytes, def.LastSync)
	if err != nil {
		return nil, apperror.NewInternal("failed to create default profile", err)
	}
	if tag.RowsAffected() == 0 {
		p, _, err := r.load(ctx)
		return p, err
	}
	return def, nil
}

func (r *postgresProfileRepo) store(ctx context.Context, p *profile.Profile) error {
	docBytes, err := json.Marshal(p)
	if err != nil {
		return apperror.NewInternal("failed to marshal profile", err)
	}

	query := `
		INSERT INTO profiles (id, doc, last_sync)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			doc = EXCLUDED.doc,
			last_sync = EXCLUDED.last_sync
	`
	if _, err := r.db.Exec(ctx, query, profileSingletonKey, docBytes, p.LastSync); err != nil {
		return apperror.NewInternal("failed to upsert profile", err)
	}
	return nil
}
