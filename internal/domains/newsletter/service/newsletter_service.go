package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/xuri/excelize/v2"

	"portfolio-backend/internal/domains/newsletter"
	"portfolio-backend/internal/shared"
	"portfolio-backend/pkg/logger"
)

type newsletterService struct {
	repo        newsletter.Repository
	asynqClient *asynq.Client
}

// NewNewsletterService - asynqClient có thể nil (tests), khi đó skip enqueue
func NewNewsletterService(repo newsletter.Repository, asynqClient *asynq.Client) newsletter.Service {
	return &newsletterService{
		repo:        repo,
		asynqClient: asynqClient,
	}
}

// Subscribe xử lý 3 trường hợp theo trạng thái hiện tại của email:
//   - chưa tồn tại: tạo mới, gửi welcome email -> Reactivated=false (201)
//   - tồn tại nhưng inactive: reactivate -> Reactivated=true (200)
//   - đang active: ErrAlreadySubscribed (400)
func (s *newsletterService) Subscribe(ctx context.Context, req newsletter.SubscribeRequest) (*newsletter.SubscribeResult, error) {
	existing, err := s.repo.GetByEmail(ctx, req.EmailAddress)
	if err != nil && !errors.Is(err, newsletter.ErrNotSubscribed) {
		return nil, err
	}

	if existing != nil {
		if existing.IsActive {
			return nil, newsletter.ErrAlreadySubscribed
		}

		reactivated, err := s.repo.SetActive(ctx, req.EmailAddress, true, time.Now())
		if err != nil {
			return nil, err
		}

		dto := reactivated.ToDTO()
		return &newsletter.SubscribeResult{Subscriber: &dto, Reactivated: true}, nil
	}

	now := time.Now()
	entity := &newsletter.Subscriber{
		ID:           uuid.New(),
		EmailAddress: req.EmailAddress,
		IsActive:     true,
		SubscribedAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Concurrent subscribe cùng email: unique constraint bắt race,
	// repo map 23505 về ErrAlreadySubscribed
	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.enqueueWelcomeEmail(created.EmailAddress)

	dto := created.ToDTO()
	return &newsletter.SubscribeResult{Subscriber: &dto, Reactivated: false}, nil
}

// Unsubscribe - ErrNotSubscribed khi email không tồn tại hoặc đã inactive
func (s *newsletterService) Unsubscribe(ctx context.Context, req newsletter.SubscribeRequest) error {
	existing, err := s.repo.GetByEmail(ctx, req.EmailAddress)
	if err != nil {
		return err
	}

	if !existing.IsActive {
		return newsletter.ErrNotSubscribed
	}

	_, err = s.repo.SetActive(ctx, req.EmailAddress, false, existing.SubscribedAt)
	return err
}

func (s *newsletterService) enqueueWelcomeEmail(emailAddress string) {
	if s.asynqClient == nil {
		return
	}

	payload, err := json.Marshal(shared.WelcomeEmailPayload{EmailAddress: emailAddress})
	if err != nil {
		logger.Error("failed to marshal welcome email payload", err)
		return
	}

	task := asynq.NewTask(shared.TypeSendWelcomeEmail, payload)
	if _, err := s.asynqClient.Enqueue(task, asynq.Queue(shared.QueueMail)); err != nil {
		logger.Error("failed to enqueue welcome email", err)
	}
}

func (s *newsletterService) List(ctx context.Context) ([]newsletter.SubscriberDTO, error) {
	subscribers, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]newsletter.SubscriberDTO, 0, len(subscribers))
	for i := range subscribers {
		dtos = append(dtos, subscribers[i].ToDTO())
	}
	return dtos, nil
}

func (s *newsletterService) GetStats(ctx context.Context) (*newsletter.Stats, error) {
	active, err := s.repo.CountByActive(ctx, true)
	if err != nil {
		return nil, err
	}

	inactive, err := s.repo.CountByActive(ctx, false)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := todayStart.AddDate(0, 0, -int(now.Weekday()))

	today, err := s.repo.CountActiveSince(ctx, todayStart)
	if err != nil {
		return nil, err
	}

	thisWeek, err := s.repo.CountActiveSince(ctx, weekStart)
	if err != nil {
		return nil, err
	}

	return &newsletter.Stats{
		TotalActive:   active,
		TotalInactive: inactive,
		Today:         today,
		ThisWeek:      thisWeek,
	}, nil
}

// ExportToExcel build XLSX với toàn bộ subscribers
func (s *newsletterService) ExportToExcel(ctx context.Context) ([]byte, error) {
	subscribers, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Subscribers"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Email Address", "Active", "Subscribed At"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(sheet, "A1", endCell, headerStyle)
	}

	for i, sub := range subscribers {
		row := i + 2
		status := "No"
		if sub.IsActive {
			status = "Yes"
		}
		values := []interface{}{
			sub.ID.String(),
			sub.EmailAddress,
			status,
			sub.SubscribedAt.Format("2006-01-02 15:04:05"),
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write excel file: %w", err)
	}

	return buf.Bytes(), nil
}
