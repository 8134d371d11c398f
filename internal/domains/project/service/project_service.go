package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/domains/project"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/logger"
)

const (
	projectListCacheKey = "projects:list"
	projectCachePattern = "projects:*"
	projectCacheTTL     = 5 * time.Minute
)

type projectService struct {
	repo       project.Repository
	storage    storage.ObjectStorage
	processor  *storage.ImageProcessor
	cache      cache.Cache
	uploadCfg  config.UploadConfig
	backendURL string
}

// NewProjectService wire upload pipeline + repository + cache
func NewProjectService(
	repo project.Repository,
	objStorage storage.ObjectStorage,
	processor *storage.ImageProcessor,
	cacheClient cache.Cache,
	uploadCfg config.UploadConfig,
	backendURL string,
) project.Service {
	return &projectService{
		repo:       repo,
		storage:    objStorage,
		processor:  processor,
		cache:      cacheClient,
		uploadCfg:  uploadCfg,
		backendURL: backendURL,
	}
}

// Create chạy trọn pipeline:
// validate upload -> transcode -> allocate filename -> store -> persist
// Upload validation fail thì KHÔNG transcode, không ghi gì cả.
// Persist fail thì compensating delete file đã ghi - best effort,
// delete fail chỉ log (orphaned file rẻ hơn dangling DB record).
func (s *projectService) Create(ctx context.Context, req project.CreateProjectRequest, form *multipart.Form) (*project.ProjectDTO, error) {
	fileHeader, err := s.processor.ValidateUpload(form, "image")
	if err != nil {
		return nil, err
	}

	data, err := readFileHeader(fileHeader)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %v", storage.ErrImageProcessing, err)
	}

	webpData, err := s.processor.Transcode(data, s.uploadCfg.ProjectWidth, s.uploadCfg.ProjectHeight, 0)
	if err != nil {
		return nil, err
	}

	filename := storage.AllocateFilename(fileHeader.Filename)

	if _, err := s.storage.Write(ctx, storage.FolderProjects, filename, webpData); err != nil {
		return nil, err
	}

	now := time.Now()
	entity := &project.Project{
		ID:            uuid.New(),
		Name:          req.ProjectName,
		Description:   req.ProjectDescription,
		ImageFilename: filename,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		// Compensating delete - tránh orphaned file khi DB insert fail
		if delErr := s.storage.Delete(ctx, storage.FolderProjects, filename); delErr != nil {
			logger.Error("failed to clean up stored image after persist failure", delErr)
		}
		return nil, err
	}

	s.invalidateCache(ctx)

	dto := created.ToDTO(s.backendURL)
	return &dto, nil
}

func (s *projectService) List(ctx context.Context) ([]project.ProjectDTO, error) {
	var cached []project.ProjectDTO
	found, err := s.cache.Get(ctx, projectListCacheKey, &cached)
	if err != nil {
		// Cache lỗi không chặn request - fall through xuống DB
		logger.Error("project list cache get failed", err)
	}
	if found {
		return cached, nil
	}

	projects, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]project.ProjectDTO, 0, len(projects))
	for i := range projects {
		dtos = append(dtos, projects[i].ToDTO(s.backendURL))
	}

	if err := s.cache.Set(ctx, projectListCacheKey, dtos, projectCacheTTL); err != nil {
		logger.Error("project list cache set failed", err)
	}

	return dtos, nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*project.ProjectDTO, error) {
	uid := utils.ParseStringToUUID(id)
	if uid == uuid.Nil {
		return nil, project.ErrInvalidProjectID
	}

	entity, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	dto := entity.ToDTO(s.backendURL)
	return &dto, nil
}

func (s *projectService) invalidateCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, projectCachePattern); err != nil {
		logger.Error("project cache invalidation failed", err)
	}
}

// readFileHeader mở multipart file và đọc toàn bộ vào memory
// Size đã được validate trước nên bounded bởi MaxFileSize
func readFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
