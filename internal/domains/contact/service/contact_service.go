package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/xuri/excelize/v2"

	"portfolio-backend/internal/domains/contact"
	"portfolio-backend/internal/shared"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/logger"
)

const topCitiesLimit = 10

type contactService struct {
	repo        contact.Repository
	asynqClient *asynq.Client
}

// NewContactService - asynqClient có thể nil (vd: tests), khi đó skip enqueue
func NewContactService(repo contact.Repository, asynqClient *asynq.Client) contact.Service {
	return &contactService{
		repo:        repo,
		asynqClient: asynqClient,
	}
}

// Submit persist submission rồi enqueue notification email job
// Enqueue fail KHÔNG fail request - submission đã lưu là đủ
func (s *contactService) Submit(ctx context.Context, req contact.CreateContactRequest) (*contact.ContactDTO, error) {
	now := time.Now()
	entity := &contact.Contact{
		ID:           uuid.New(),
		FullName:     req.FullName,
		EmailAddress: req.EmailAddress,
		MobileNumber: req.MobileNumber,
		City:         req.City,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.enqueueNotification(created)

	dto := created.ToDTO()
	return &dto, nil
}

func (s *contactService) enqueueNotification(ct *contact.Contact) {
	if s.asynqClient == nil {
		return
	}

	payload, err := json.Marshal(shared.ContactNotificationPayload{
		ContactID:    ct.ID.String(),
		FullName:     ct.FullName,
		EmailAddress: ct.EmailAddress,
		MobileNumber: ct.MobileNumber,
		City:         ct.City,
	})
	if err != nil {
		logger.Error("failed to marshal contact notification payload", err)
		return
	}

	task := asynq.NewTask(shared.TypeSendContactNotification, payload)
	if _, err := s.asynqClient.Enqueue(task, asynq.Queue(shared.QueueMail)); err != nil {
		logger.Error("failed to enqueue contact notification", err)
	}
}

func (s *contactService) List(ctx context.Context) ([]contact.ContactDTO, error) {
	contacts, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]contact.ContactDTO, 0, len(contacts))
	for i := range contacts {
		dtos = append(dtos, contacts[i].ToDTO())
	}
	return dtos, nil
}

func (s *contactService) GetByID(ctx context.Context, id string) (*contact.ContactDTO, error) {
	uid := utils.ParseStringToUUID(id)
	if uid == uuid.Nil {
		return nil, contact.ErrInvalidContactID
	}

	entity, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	dto := entity.ToDTO()
	return &dto, nil
}

// GetStats - total, today (từ 00:00 local), this week (từ Chủ nhật 00:00), theo city
func (s *contactService) GetStats(ctx context.Context) (*contact.Stats, error) {
	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := todayStart.AddDate(0, 0, -int(now.Weekday()))

	today, err := s.repo.CountSince(ctx, todayStart)
	if err != nil {
		return nil, err
	}

	thisWeek, err := s.repo.CountSince(ctx, weekStart)
	if err != nil {
		return nil, err
	}

	byCity, err := s.repo.TopCities(ctx, topCitiesLimit)
	if err != nil {
		return nil, err
	}

	return &contact.Stats{
		Total:    total,
		Today:    today,
		ThisWeek: thisWeek,
		ByCity:   byCity,
	}, nil
}

// ExportToExcel build XLSX với toàn bộ contact submissions
func (s *contactService) ExportToExcel(ctx context.Context) ([]byte, error) {
	contacts, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Contacts"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Full Name", "Email Address", "Mobile Number", "City", "Submitted At"}
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

	for i, ct := range contacts {
		row := i + 2
		values := []interface{}{
			ct.ID.String(),
			ct.FullName,
			ct.EmailAddress,
			ct.MobileNumber,
			ct.City,
			ct.CreatedAt.Format("2006-01-02 15:04:05"),
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
