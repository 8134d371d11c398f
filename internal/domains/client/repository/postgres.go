package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/client"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) client.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, entity *client.Client) (*client.Client, error) {
	const query = `
		INSERT INTO clients (
			id, name, description, designation, image_filename,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING
			id, name, description, designation, image_filename,
			created_at, updated_at
	`

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Name,
		entity.Description,
		entity.Designation,
		entity.ImageFilename,
		entity.CreatedAt,
		entity.UpdatedAt,
	)

	created := &client.Client{}
	err := row.Scan(
		&created.ID,
		&created.Name,
		&created.Description,
		&created.Designation,
		&created.ImageFilename,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]client.Client, error) {
	const query = `
		SELECT id, name, description, designation, image_filename, created_at, updated_at
		FROM clients
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := []client.Client{}
	for rows.Next() {
		var cl client.Client
		err := rows.Scan(
			&cl.ID,
			&cl.Name,
			&cl.Description,
			&cl.Designation,
			&cl.ImageFilename,
			&cl.CreatedAt,
			&cl.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, cl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clients: %w", err)
	}

	return clients, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	const query = `
		SELECT id, name, description, designation, image_filename, created_at, updated_at
		FROM clients
		WHERE id = $1
	`

	cl := &client.Client{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&cl.ID,
		&cl.Name,
		&cl.Description,
		&cl.Designation,
		&cl.ImageFilename,
		&cl.CreatedAt,
		&cl.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, client.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return cl, nil
}
