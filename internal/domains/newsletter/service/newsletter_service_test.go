package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/newsletter"
)

// fakeRepository - in-memory Repository cho tests, key theo email
type fakeRepository struct {
	byEmail map[string]*newsletter.Subscriber
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byEmail: map[string]*newsletter.Subscriber{}}
}

func (f *fakeRepository) Create(ctx context.Context, entity *newsletter.Subscriber) (*newsletter.Subscriber, error) {
	if _, ok := f.byEmail[entity.EmailAddress]; ok {
		return nil, newsletter.ErrAlreadySubscribed
	}
	cp := *entity
	f.byEmail[entity.EmailAddress] = &cp
	return &cp, nil
}

func (f *fakeRepository) GetByEmail(ctx context.Context, email string) (*newsletter.Subscriber, error) {
	sub, ok := f.byEmail[email]
	if !ok {
		return nil, newsletter.ErrNotSubscribed
	}
	cp := *sub
	return &cp, nil
}

func (f *fakeRepository) GetAll(ctx context.Context) ([]newsletter.Subscriber, error) {
	out := []newsletter.Subscriber{}
	for _, sub := range f.byEmail {
		out = append(out, *sub)
	}
	return out, nil
}

func (f *fakeRepository) SetActive(ctx context.Context, email string, active bool, subscribedAt time.Time) (*newsletter.Subscriber, error) {
	sub, ok := f.byEmail[email]
	if !ok {
		return nil, newsletter.ErrNotSubscribed
	}
	sub.IsActive = active
	if active {
		sub.SubscribedAt = subscribedAt
	}
	sub.UpdatedAt = time.Now()
	cp := *sub
	return &cp, nil
}

func (f *fakeRepository) CountByActive(ctx context.Context, active bool) (int, error) {
	n := 0
	for _, sub := range f.byEmail {
		if sub.IsActive == active {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepository) CountActiveSince(ctx context.Context, since time.Time) (int, error) {
	n := 0
	for _, sub := range f.byEmail {
		if sub.IsActive && !sub.SubscribedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("new email creates active subscription", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewNewsletterService(repo, nil)

		result, err := svc.Subscribe(ctx, newsletter.SubscribeRequest{EmailAddress: "new@example.com"})
		require.NoError(t, err)
		assert.False(t, result.Reactivated)
		assert.True(t, result.Subscriber.IsActive)
		assert.Equal(t, "new@example.com", result.Subscriber.EmailAddress)
	})

	t.Run("active email is rejected", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewNewsletterService(repo, nil)

		_, err := svc.Subscribe(ctx, newsletter.SubscribeRequest{EmailAddress: "dup@example.com"})
		require.NoError(t, err)

		_, err = svc.Subscribe(ctx, newsletter.SubscribeRequest{EmailAddress: "dup@example.com"})
		assert.ErrorIs(t, err, newsletter.ErrAlreadySubscribed)
	})

	t.Run("inactive email is reactivated", func(t *testing.T) {
		repo := newFakeRepository()
		repo.byEmail["back@example.com"] = &newsletter.Subscriber{
			ID:           uuid.New(),
			EmailAddress: "back@example.com",
			IsActive:     false,
			SubscribedAt: time.Now().Add(-48 * time.Hour),
		}
		svc := NewNewsletterService(repo, nil)

		result, err := svc.Subscribe(ctx, newsletter.SubscribeRequest{EmailAddress: "back@example.com"})
		require.NoError(t, err)
		assert.True(t, result.Reactivated)
		assert.True(t, result.Subscriber.IsActive)
		// SubscribedAt được refresh khi reactivate
		assert.WithinDuration(t, time.Now(), result.Subscriber.SubscribedAt, time.Minute)
	})
}

func TestUnsubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("active subscription is deactivated", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewNewsletterService(repo, nil)

		_, err := svc.Subscribe(ctx, newsletter.SubscribeRequest{EmailAddress: "leave@example.com"})
		require.NoError(t, err)

		err = svc.Unsubscribe(ctx, newsletter.SubscribeRequest{EmailAddress: "leave@example.com"})
		require.NoError(t, err)
		assert.False(t, repo.byEmail["leave@example.com"].IsActive)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc := NewNewsletterService(newFakeRepository(), nil)
		err := svc.Unsubscribe(ctx, newsletter.SubscribeRequest{EmailAddress: "ghost@example.com"})
		assert.ErrorIs(t, err, newsletter.ErrNotSubscribed)
	})

	t.Run("already inactive email", func(t *testing.T) {
		repo := newFakeRepository()
		repo.byEmail["gone@example.com"] = &newsletter.Subscriber{
			ID:           uuid.New(),
			EmailAddress: "gone@example.com",
			IsActive:     false,
		}
		svc := NewNewsletterService(repo, nil)

		err := svc.Unsubscribe(ctx, newsletter.SubscribeRequest{EmailAddress: "gone@example.com"})
		assert.ErrorIs(t, err, newsletter.ErrNotSubscribed)
	})
}

func TestGetStats(t *testing.T) {
	repo := newFakeRepository()
	now := time.Now()

	repo.byEmail["a@example.com"] = &newsletter.Subscriber{EmailAddress: "a@example.com", IsActive: true, SubscribedAt: now}
	repo.byEmail["b@example.com"] = &newsletter.Subscriber{EmailAddress: "b@example.com", IsActive: true, SubscribedAt: now.AddDate(0, -1, 0)}
	repo.byEmail["c@example.com"] = &newsletter.Subscriber{EmailAddress: "c@example.com", IsActive: false, SubscribedAt: now}

	svc := NewNewsletterService(repo, nil)
	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalActive)
	assert.Equal(t, 1, stats.TotalInactive)
	assert.Equal(t, 1, stats.Today)
}

func TestExportToExcel(t *testing.T) {
	repo := newFakeRepository()
	repo.byEmail["a@example.com"] = &newsletter.Subscriber{
		ID:           uuid.New(),
		EmailAddress: "a@example.com",
		IsActive:     true,
		SubscribedAt: time.Now(),
	}

	svc := NewNewsletterService(repo, nil)
	data, err := svc.ExportToExcel(context.Background())
	require.NoError(t, err)

	// XLSX là zip archive - magic bytes PK
	require.Greater(t, len(data), 4)
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}
