package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/project"
	"portfolio-backend/pkg/logger"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository tạo repository instance
func NewPostgresRepository(pool *pgxpool.Pool) project.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, entity *project.Project) (*project.Project, error) {
	const query = `
		INSERT INTO projects (
			id, name, description, image_filename,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING
			id, name, description, image_filename,
			created_at, updated_at
	`

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Name,
		entity.Description,
		entity.ImageFilename,
		entity.CreatedAt,
		entity.UpdatedAt,
	)

	created := &project.Project{}
	err := row.Scan(
		&created.ID,
		&created.Name,
		&created.Description,
		&created.ImageFilename,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		logger.Error("Create project: database error", err)
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]project.Project, error) {
	const query = `
		SELECT id, name, description, image_filename, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		var p project.Project
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.ImageFilename,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	return projects, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	const query = `
		SELECT id, name, description, image_filename, created_at, updated_at
		FROM projects
		WHERE id = $1
	`

	p := &project.Project{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.ImageFilename,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, project.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}
