package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/domains/client"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/logger"
)

const (
	clientListCacheKey = "clients:list"
	clientCachePattern = "clients:*"
	clientCacheTTL     = 5 * time.Minute
)

type clientService struct {
	repo       client.Repository
	storage    storage.ObjectStorage
	processor  *storage.ImageProcessor
	cache      cache.Cache
	uploadCfg  config.UploadConfig
	backendURL string
}

func NewClientService(
	repo client.Repository,
	objStorage storage.ObjectStorage,
	processor *storage.ImageProcessor,
	cacheClient cache.Cache,
	uploadCfg config.UploadConfig,
	backendURL string,
) client.Service {
	return &clientService{
		repo:       repo,
		storage:    objStorage,
		processor:  processor,
		cache:      cacheClient,
		uploadCfg:  uploadCfg,
		backendURL: backendURL,
	}
}

// Create - cùng pipeline với project nhưng avatar profile (vuông, nhỏ)
func (s *clientService) Create(ctx context.Context, req client.CreateClientRequest, form *multipart.Form) (*client.ClientDTO, error) {
	fileHeader, err := s.processor.ValidateUpload(form, "image")
	if err != nil {
		return nil, err
	}

	data, err := readFileHeader(fileHeader)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %v", storage.ErrImageProcessing, err)
	}

	webpData, err := s.processor.Transcode(data, s.uploadCfg.ClientWidth, s.uploadCfg.ClientHeight, 0)
	if err != nil {
		return nil, err
	}

	filename := storage.AllocateFilename(fileHeader.Filename)

	if _, err := s.storage.Write(ctx, storage.FolderClients, filename, webpData); err != nil {
		return nil, err
	}

	now := time.Now()
	entity := &client.Client{
		ID:            uuid.New(),
		Name:          req.ClientName,
		Description:   req.ClientDescription,
		Designation:   req.ClientDesignation,
		ImageFilename: filename,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		if delErr := s.storage.Delete(ctx, storage.FolderClients, filename); delErr != nil {
			logger.Error("failed to clean up stored avatar after persist failure", delErr)
		}
		return nil, err
	}

	s.invalidateCache(ctx)

	dto := created.ToDTO(s.backendURL)
	return &dto, nil
}

func (s *clientService) List(ctx context.Context) ([]client.ClientDTO, error) {
	var cached []client.ClientDTO
	found, err := s.cache.Get(ctx, clientListCacheKey, &cached)
	if err != nil {
		logger.Error("client list cache get failed", err)
	}
	if found {
		return cached, nil
	}

	clients, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]client.ClientDTO, 0, len(clients))
	for i := range clients {
		dtos = append(dtos, clients[i].ToDTO(s.backendURL))
	}

	if err := s.cache.Set(ctx, clientListCacheKey, dtos, clientCacheTTL); err != nil {
		logger.Error("client list cache set failed", err)
	}

	return dtos, nil
}

func (s *clientService) GetByID(ctx context.Context, id string) (*client.ClientDTO, error) {
	uid := utils.ParseStringToUUID(id)
	if uid == uuid.Nil {
		return nil, client.ErrInvalidClientID
	}

	entity, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	dto := entity.ToDTO(s.backendURL)
	return &dto, nil
}

func (s *clientService) invalidateCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, clientCachePattern); err != nil {
		logger.Error("client cache invalidation failed", err)
	}
}

func readFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
