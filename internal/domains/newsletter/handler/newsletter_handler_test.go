package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/newsletter"
	"portfolio-backend/internal/shared/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeService struct {
	subscribeResult *newsletter.SubscribeResult
	subscribeErr    error
	unsubscribeErr  error
	listDTOs        []newsletter.SubscriberDTO
	listErr         error
	stats           *newsletter.Stats
	statsErr        error
	exportData      []byte
	exportErr       error
}

func (f *fakeService) Subscribe(ctx context.Context, req newsletter.SubscribeRequest) (*newsletter.SubscribeResult, error) {
	return f.subscribeResult, f.subscribeErr
}

func (f *fakeService) Unsubscribe(ctx context.Context, req newsletter.SubscribeRequest) error {
	return f.unsubscribeErr
}

func (f *fakeService) List(ctx context.Context) ([]newsletter.SubscriberDTO, error) {
	return f.listDTOs, f.listErr
}

func (f *fakeService) GetStats(ctx context.Context) (*newsletter.Stats, error) {
	return f.stats, f.statsErr
}

func (f *fakeService) ExportToExcel(ctx context.Context) ([]byte, error) {
	return f.exportData, f.exportErr
}

func setupRouter(svc newsletter.Service) *gin.Engine {
	h := NewNewsletterHandler(svc)
	router := gin.New()
	router.GET("/api/newsletter", h.GetSubscribers)
	router.POST("/api/newsletter/subscribe", h.Subscribe)
	router.POST("/api/newsletter/unsubscribe", h.Unsubscribe)
	router.GET("/api/newsletter/stats", h.GetStats)
	router.GET("/api/newsletter/export", h.ExportSubscribers)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubscribeHandler(t *testing.T) {
	t.Run("new subscription returns 201", func(t *testing.T) {
		router := setupRouter(&fakeService{
			subscribeResult: &newsletter.SubscribeResult{
				Subscriber: &newsletter.SubscriberDTO{
					ID:           uuid.New(),
					EmailAddress: "new@example.com",
					IsActive:     true,
				},
			},
		})

		rec := postJSON(t, router, "/api/newsletter/subscribe",
			gin.H{"emailAddress": "new@example.com"})

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp response.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, "Subscribed to newsletter successfully", resp.Message)
	})

	t.Run("reactivation returns 200", func(t *testing.T) {
		router := setupRouter(&fakeService{
			subscribeResult: &newsletter.SubscribeResult{
				Subscriber: &newsletter.SubscriberDTO{
					ID:           uuid.New(),
					EmailAddress: "back@example.com",
					IsActive:     true,
				},
				Reactivated: true,
			},
		})

		rec := postJSON(t, router, "/api/newsletter/subscribe",
			gin.H{"emailAddress": "back@example.com"})

		require.Equal(t, http.StatusOK, rec.Code)

		var resp response.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Subscription reactivated successfully", resp.Message)
	})

	t.Run("duplicate active subscription returns 400", func(t *testing.T) {
		router := setupRouter(&fakeService{subscribeErr: newsletter.ErrAlreadySubscribed})

		rec := postJSON(t, router, "/api/newsletter/subscribe",
			gin.H{"emailAddress": "dup@example.com"})

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp response.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "error", resp.Status)
	})

	t.Run("invalid email returns field error", func(t *testing.T) {
		router := setupRouter(&fakeService{})

		rec := postJSON(t, router, "/api/newsletter/subscribe",
			gin.H{"emailAddress": "not-an-email"})

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Status string                `json:"status"`
			Errors []response.FieldError `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "emailAddress", resp.Errors[0].Field)
	})
}

func TestUnsubscribeHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router := setupRouter(&fakeService{})

		rec := postJSON(t, router, "/api/newsletter/unsubscribe",
			gin.H{"emailAddress": "leave@example.com"})

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no active subscription returns 404", func(t *testing.T) {
		router := setupRouter(&fakeService{unsubscribeErr: newsletter.ErrNotSubscribed})

		rec := postJSON(t, router, "/api/newsletter/unsubscribe",
			gin.H{"emailAddress": "ghost@example.com"})

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestExportSubscribersHandler(t *testing.T) {
	router := setupRouter(&fakeService{exportData: []byte{'P', 'K', 3, 4}})

	req := httptest.NewRequest(http.MethodGet, "/api/newsletter/export", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
}
