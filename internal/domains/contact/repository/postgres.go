package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/contact"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) contact.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, entity *contact.Contact) (*contact.Contact, error) {
	const query = `
		INSERT INTO contacts (
			id, full_name, email_address, mobile_number, city,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING
			id, full_name, email_address, mobile_number, city,
			created_at, updated_at
	`

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.FullName,
		entity.EmailAddress,
		entity.MobileNumber,
		entity.City,
		entity.CreatedAt,
		entity.UpdatedAt,
	)

	created := &contact.Contact{}
	err := row.Scan(
		&created.ID,
		&created.FullName,
		&created.EmailAddress,
		&created.MobileNumber,
		&created.City,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]contact.Contact, error) {
	const query = `
		SELECT id, full_name, email_address, mobile_number, city, created_at, updated_at
		FROM contacts
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	contacts := []contact.Contact{}
	for rows.Next() {
		var ct contact.Contact
		err := rows.Scan(
			&ct.ID,
			&ct.FullName,
			&ct.EmailAddress,
			&ct.MobileNumber,
			&ct.City,
			&ct.CreatedAt,
			&ct.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, ct)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	return contacts, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*contact.Contact, error) {
	const query = `
		SELECT id, full_name, email_address, mobile_number, city, created_at, updated_at
		FROM contacts
		WHERE id = $1
	`

	ct := &contact.Contact{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&ct.ID,
		&ct.FullName,
		&ct.EmailAddress,
		&ct.MobileNumber,
		&ct.City,
		&ct.CreatedAt,
		&ct.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, contact.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return ct, nil
}

func (r *postgresRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM contacts WHERE created_at >= $1`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count contacts since %s: %w", since.Format(time.RFC3339), err)
	}
	return count, nil
}

func (r *postgresRepository) TopCities(ctx context.Context, limit int) ([]contact.CityCount, error) {
	const query = `
		SELECT city, COUNT(*) AS count
		FROM contacts
		GROUP BY city
		ORDER BY count DESC, city ASC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top cities: %w", err)
	}
	defer rows.Close()

	cities := []contact.CityCount{}
	for rows.Next() {
		var cc contact.CityCount
		if err := rows.Scan(&cc.City, &cc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan city count: %w", err)
		}
		cities = append(cities, cc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate city counts: %w", err)
	}

	return cities, nil
}
