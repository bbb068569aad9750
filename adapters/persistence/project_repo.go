package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/sharafhazem/portfolio-ops/internal/domain/project"
	"github.com/sharafhazem/portfolio-ops/pkg/apperror"
	"github.com/sharafhazem/portfolio-ops/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

var psqlProject = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const projectColumns = `id, title, category, images, legacy_image, description, tech,
	client_name, timeline, role_stack, core_challenge, technical_solution, links, created_at`

func scanProject(row pgx.Row, l logger.Logger) (*project.Project, error) {
	p := &project.Project{}
	var imagesBytes, techBytes, linksBytes []byte

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Category,
		&imagesBytes,
		&p.LegacyImage,
		&p.Desc,
		&techBytes,
		&p.ClientName,
		&p.Timeline,
		&p.RoleStack,
		&p.CoreChallenge,
		&p.TechnicalSolution,
		&linksBytes,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("project", "")
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}

	if err := json.Unmarshal(imagesBytes, &p.Images); err != nil {
		l.Warn("Failed to unmarshal project images", zap.String("project_id", p.ID.String()), zap.Error(err))
		p.Images = []string{}
	}
	if err := json.Unmarshal(techBytes, &p.Tech); err != nil {
		l.Warn("Failed to unmarshal project tech", zap.String("project_id", p.ID.String()), zap.Error(err))
		p.Tech = []string{}
	}
	if err := json.Unmarshal(linksBytes, &p.Links); err != nil {
		l.Warn("Failed to unmarshal project links", zap.String("project_id", p.ID.String()), zap.Error(err))
		p.Links = project.Links{}
	}

	p.Normalize()
	return p, nil
}

func scanProjects(rows pgx.Rows, l logger.Logger) ([]*project.Project, error) {
	defer rows.Close()
	projects := make([]*project.Project, 0)

	for rows.Next() {
		p, err := scanProject(rows, l)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresProjectRepo) marshalListFields(p *project.Project) (images, tech, links []byte, err error) {
	if images, err = json.Marshal(p.Images); err != nil {
		return nil, nil, nil, apperror.NewInternal("failed to marshal project images", err)
	}
	if tech, err = json.Marshal(p.Tech); err != nil {
		return nil, nil, nil, apperror.NewInternal("failed to marshal project tech", err)
	}
	if links, err = json.Marshal(p.Links); err != nil {
		return nil, nil, nil, apperror.NewInternal("failed to marshal project links", err)
	}
	return images, tech, links, nil
}

func (r *postgresProjectRepo) Save(ctx context.Context, p *project.Project) error {
	imagesBytes, techBytes, linksBytes, err := r.marshalListFields(p)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO projects (id, title, category, images, legacy_image, description, tech,
			client_name, timeline, role_stack, core_challenge, technical_solution, links, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err = r.db.Exec(ctx, query,
		p.ID, p.Title, p.Category, imagesBytes, p.LegacyImage, p.Desc, techBytes,
		p.ClientName, p.Timeline, p.RoleStack, p.CoreChallenge, p.TechnicalSolution,
		linksBytes, p.CreatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save project", err)
	}
	return nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, p *project.Project) error {
	imagesBytes, techBytes, linksBytes, err := r.marshalListFields(p)
	if err != nil {
		return err
	}

	query := `
		UPDATE projects SET
			title = $2, category = $3, images = $4, legacy_image = $5, description = $6,
			tech = $7, client_name = $8, timeline = $9, role_stack = $10,
			core_challenge = $11, technical_solution = $12, links = $13
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Category, imagesBytes, p.LegacyImage, p.Desc,
		techBytes, p.ClientName, p.Timeline, p.RoleStack,
		p.CoreChallenge, p.TechnicalSolution, linksBytes,
	)
	if err != nil {
		return apperror.NewInternal("failed to update project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", p.ID.String())
	}
	return nil
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return apperror.NewInternal("failed to delete project", err)
	}
	return nil
}

func (r *postgresProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	row := r.db.QueryRow(ctx, query, id)
	p, err := scanProject(row, r.logger)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("project", id.String())
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	builder := psqlProject.Select(projectColumns).
		From("projects").
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list projects query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}

	return scanProjects(rows, r.logger)
}
