package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/newsletter"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) newsletter.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, entity *newsletter.Subscriber) (*newsletter.Subscriber, error) {
	const query = `
		INSERT INTO newsletter_subscribers (
			id, email_address, is_active, subscribed_at,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING
			id, email_address, is_active, subscribed_at,
			created_at, updated_at
	`

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.EmailAddress,
		entity.IsActive,
		entity.SubscribedAt,
		entity.CreatedAt,
		entity.UpdatedAt,
	)

	created := &newsletter.Subscriber{}
	err := row.Scan(
		&created.ID,
		&created.EmailAddress,
		&created.IsActive,
		&created.SubscribedAt,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		// 23505 = unique_violation trên email_address
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, newsletter.ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("failed to create subscriber: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*newsletter.Subscriber, error) {
	const query = `
		SELECT id, email_address, is_active, subscribed_at, created_at, updated_at
		FROM newsletter_subscribers
		WHERE email_address = $1
	`

	sub := &newsletter.Subscriber{}
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&sub.ID,
		&sub.EmailAddress,
		&sub.IsActive,
		&sub.SubscribedAt,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, newsletter.ErrNotSubscribed
		}
		return nil, fmt.Errorf("failed to get subscriber: %w", err)
	}

	return sub, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]newsletter.Subscriber, error) {
	const query = `
		SELECT id, email_address, is_active, subscribed_at, created_at, updated_at
		FROM newsletter_subscribers
		ORDER BY subscribed_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscribers: %w", err)
	}
	defer rows.Close()

	subscribers := []newsletter.Subscriber{}
	for rows.Next() {
		var sub newsletter.Subscriber
		err := rows.Scan(
			&sub.ID,
			&sub.EmailAddress,
			&sub.IsActive,
			&sub.SubscribedAt,
			&sub.CreatedAt,
			&sub.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subscribers = append(subscribers, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subscribers: %w", err)
	}

	return subscribers, nil
}

// SetActive flip subscription state - dùng cho cả reactivate và unsubscribe
// subscribedAt chỉ update khi activate lại
func (r *postgresRepository) SetActive(ctx context.Context, email string, active bool, subscribedAt time.Time) (*newsletter.Subscriber, error) {
	const query = `
		UPDATE newsletter_subscribers
		SET is_active = $2,
		    subscribed_at = CASE WHEN $2 THEN $3 ELSE subscribed_at END,
		    updated_at = NOW()
		WHERE email_address = $1
		RETURNING
			id, email_address, is_active, subscribed_at,
			created_at, updated_at
	`

	sub := &newsletter.Subscriber{}
	err := r.pool.QueryRow(ctx, query, email, active, subscribedAt).Scan(
		&sub.ID,
		&sub.EmailAddress,
		&sub.IsActive,
		&sub.SubscribedAt,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, newsletter.ErrNotSubscribed
		}
		return nil, fmt.Errorf("failed to update subscriber: %w", err)
	}

	return sub, nil
}

func (r *postgresRepository) CountByActive(ctx context.Context, active bool) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM newsletter_subscribers WHERE is_active = $1`, active).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) CountActiveSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM newsletter_subscribers WHERE is_active = TRUE AND subscribed_at >= $1`,
		since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent subscribers: %w", err)
	}
	return count, nil
}
