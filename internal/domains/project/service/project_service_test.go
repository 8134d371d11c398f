package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/domains/project"
	"portfolio-backend/internal/infrastructure/storage"
)

// ---- fakes ----

type fakeRepository struct {
	projects  []project.Project
	createErr error
}

func (f *fakeRepository) Create(ctx context.Context, entity *project.Project) (*project.Project, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.projects = append(f.projects, *entity)
	cp := *entity
	return &cp, nil
}

func (f *fakeRepository) GetAll(ctx context.Context) ([]project.Project, error) {
	return f.projects, nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	for i := range f.projects {
		if f.projects[i].ID == id {
			cp := f.projects[i]
			return &cp, nil
		}
	}
	return nil, project.ErrProjectNotFound
}

type fakeStorage struct {
	writes  map[string][]byte
	deletes []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{writes: map[string][]byte{}}
}

func (f *fakeStorage) Write(ctx context.Context, folder, filename string, data []byte) (string, error) {
	key := folder + "/" + filename
	f.writes[key] = data
	return key, nil
}

func (f *fakeStorage) Delete(ctx context.Context, folder, filename string) error {
	f.deletes = append(f.deletes, folder+"/"+filename)
	return nil
}

type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (noopCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (noopCache) Delete(ctx context.Context, keys ...string) error        { return nil }
func (noopCache) DeletePattern(ctx context.Context, pattern string) error { return nil }
func (noopCache) Ping(ctx context.Context) error                          { return nil }

// ---- helpers ----

func testUploadConfig() config.UploadConfig {
	return config.UploadConfig{
		MaxFileSize:      5242880,
		AllowedMimeTypes: []string{"image/jpeg", "image/jpg", "image/png", "image/webp"},
		Quality:          80,
		ProjectWidth:     450,
		ProjectHeight:    350,
	}
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: uint8(x % 256), B: uint8(y % 256), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// multipartForm build một *multipart.Form thực sự qua HTTP parsing
// để FileHeader.Open hoạt động như production
func multipartForm(t *testing.T, field, filename, contentType string, content []byte) *multipart.Form {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/api/projects", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm
}

func newTestService(repo *fakeRepository, st *fakeStorage) project.Service {
	cfg := testUploadConfig()
	return NewProjectService(
		repo,
		st,
		storage.NewImageProcessor(cfg),
		noopCache{},
		cfg,
		"http://localhost:5000",
	)
}

func validRequest() project.CreateProjectRequest {
	return project.CreateProjectRequest{
		ProjectName:        "Portfolio Website",
		ProjectDescription: "A personal portfolio built with modern tooling",
	}
}

// ---- tests ----

func TestCreateProject(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path stores webp and persists record", func(t *testing.T) {
		repo := &fakeRepository{}
		st := newFakeStorage()
		svc := newTestService(repo, st)

		form := multipartForm(t, "image", "My Screenshot.png", "image/png", pngBytes(t, 800, 600))

		dto, err := svc.Create(ctx, validRequest(), form)
		require.NoError(t, err)

		assert.True(t, strings.HasSuffix(dto.ProjectImage, ".webp"))
		assert.True(t, strings.HasPrefix(dto.ProjectImage, "my-screenshot-"))
		assert.Equal(t,
			"http://localhost:5000/uploads/projects/"+dto.ProjectImage,
			dto.ImageURL)

		// Đúng một file được ghi vào folder projects
		require.Len(t, st.writes, 1)
		for key, data := range st.writes {
			assert.True(t, strings.HasPrefix(key, storage.FolderProjects+"/"))
			// Output là WebP với đúng dimensions
			decoded, format, err := image.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, "webp", format)
			assert.Equal(t, 450, decoded.Bounds().Dx())
			assert.Equal(t, 350, decoded.Bounds().Dy())
		}

		require.Len(t, repo.projects, 1)
		assert.Equal(t, dto.ProjectImage, repo.projects[0].ImageFilename)
		assert.Empty(t, st.deletes)
	})

	t.Run("rejected upload writes nothing", func(t *testing.T) {
		repo := &fakeRepository{}
		st := newFakeStorage()
		svc := newTestService(repo, st)

		form := multipartForm(t, "image", "doc.pdf", "application/pdf", []byte("%PDF-1.4"))

		_, err := svc.Create(ctx, validRequest(), form)
		assert.ErrorIs(t, err, storage.ErrInvalidFileType)
		assert.Empty(t, st.writes)
		assert.Empty(t, repo.projects)
	})

	t.Run("missing file writes nothing", func(t *testing.T) {
		repo := &fakeRepository{}
		st := newFakeStorage()
		svc := newTestService(repo, st)

		_, err := svc.Create(ctx, validRequest(), nil)
		assert.ErrorIs(t, err, storage.ErrMissingFile)
		assert.Empty(t, st.writes)
	})

	t.Run("corrupt image fails before storage", func(t *testing.T) {
		repo := &fakeRepository{}
		st := newFakeStorage()
		svc := newTestService(repo, st)

		form := multipartForm(t, "image", "broken.png", "image/png", []byte("not a real png"))

		_, err := svc.Create(ctx, validRequest(), form)
		assert.ErrorIs(t, err, storage.ErrImageProcessing)
		assert.Empty(t, st.writes)
		assert.Empty(t, repo.projects)
	})

	t.Run("persist failure cleans up stored image", func(t *testing.T) {
		repo := &fakeRepository{createErr: errors.New("connection reset")}
		st := newFakeStorage()
		svc := newTestService(repo, st)

		form := multipartForm(t, "image", "shot.png", "image/png", pngBytes(t, 500, 400))

		_, err := svc.Create(ctx, validRequest(), form)
		require.Error(t, err)

		// File đã ghi phải được compensating delete
		require.Len(t, st.writes, 1)
		require.Len(t, st.deletes, 1)
		for key := range st.writes {
			assert.Equal(t, key, st.deletes[0])
		}
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepository{}
	st := newFakeStorage()
	svc := newTestService(repo, st)

	t.Run("invalid uuid", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, project.ErrInvalidProjectID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, project.ErrProjectNotFound)
	})

	t.Run("found", func(t *testing.T) {
		id := uuid.New()
		repo.projects = append(repo.projects, project.Project{
			ID:            id,
			Name:          "Portfolio",
			ImageFilename: "a.webp",
		})

		dto, err := svc.GetByID(ctx, id.String())
		require.NoError(t, err)
		assert.Equal(t, id, dto.ID)
	})
}
