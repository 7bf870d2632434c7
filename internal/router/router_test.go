package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/exec-consultation-api/internal/dto"
	"github.com/noah-isme/exec-consultation-api/internal/handler"
	"github.com/noah-isme/exec-consultation-api/internal/models"
	"github.com/noah-isme/exec-consultation-api/internal/repository"
	"github.com/noah-isme/exec-consultation-api/internal/service"
	"github.com/noah-isme/exec-consultation-api/internal/validation"
	"github.com/noah-isme/exec-consultation-api/pkg/config"
)

type memoryConsultations struct {
	mu    sync.Mutex
	items []models.Consultation
}

func (m *memoryConsultations) Insert(ctx context.Context, c *models.Consultation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, *c)
	return nil
}

func (m *memoryConsultations) List(ctx context.Context, filter models.ConsultationFilter) ([]models.Consultation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Consultation{}
	for _, c := range m.items {
		if filter.Status == nil || c.Status == *filter.Status {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

func (m *memoryConsultations) FindByID(ctx context.Context, id string) (*models.Consultation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.items {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memoryStatusChecks struct {
	items []models.StatusCheck
}

func (m *memoryStatusChecks) Insert(ctx context.Context, check *models.StatusCheck) error {
	m.items = append(m.items, *check)
	return nil
}

func (m *memoryStatusChecks) List(ctx context.Context, limit int) ([]models.StatusCheck, error) {
	return m.items, nil
}

func buildRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validate := validation.New()
	metrics := service.NewMetricsService()
	log := zap.NewNop()

	consultations := service.NewConsultationService(&memoryConsultations{}, validate, nil, metrics, log)
	statusChecks := service.NewStatusCheckService(&memoryStatusChecks{}, validate, metrics, log)

	return New(cfg, log, metrics, Handlers{
		Consultations: handler.NewConsultationHandler(consultations),
		StatusChecks:  handler.NewStatusCheckHandler(statusChecks),
		System:        handler.NewSystemHandler(metrics, nil),
	})
}

func testConfig() *config.Config {
	return &config.Config{
		Env:             config.EnvDevelopment,
		APIPrefix:       "/api",
		MountUnprefixed: true,
		CORS:            config.CORSConfig{AllowedOrigins: []string{"*"}},
		Metrics:         config.MetricsConfig{Enabled: true},
	}
}

func do(r http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestConsultationRoundTrip(t *testing.T) {
	r := buildRouter(t, testConfig())

	payload := []byte(`{"name":"Jane Doe","email":"jane@ex.com","company":"Acme","title":"CEO","inquiry_type":"advisory","message":"Need strategic advisory support for Q3 planning"}`)
	w := do(r, http.MethodPost, "/api/consultation", payload)
	require.Equal(t, http.StatusOK, w.Code)

	var submit dto.ConsultationSubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submit))
	require.True(t, submit.Success)
	require.NotNil(t, submit.ConsultationID)
	assert.Equal(t, "24 hours", *submit.EstimatedResponseTime)

	w = do(r, http.MethodGet, "/api/consultation/"+*submit.ConsultationID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Consultation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "jane@ex.com", got.Email)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, "CEO", got.Title)
	assert.Equal(t, models.InquiryAdvisory, got.InquiryType)
	assert.Equal(t, models.ConsultationStatusNew, got.Status)

	w = do(r, http.MethodGet, "/consultation/"+*submit.ConsultationID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/consultations?status=new", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []models.Consultation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 1)

	w = do(r, http.MethodGet, "/api/consultations?status=closed", nil)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(r, http.MethodGet, "/api/consultations?status=bogus", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestShortMessageRejected(t *testing.T) {
	r := buildRouter(t, testConfig())

	payload := []byte(`{"name":"Jane Doe","email":"jane@ex.com","company":"Acme","title":"CEO","inquiry_type":"advisory","message":"short"}`)
	w := do(r, http.MethodPost, "/api/consultation", payload)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), `"field":"message"`)

	w = do(r, http.MethodGet, "/api/consultations", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestInquiryTypeMustMatchExactly(t *testing.T) {
	r := buildRouter(t, testConfig())

	payload := []byte(`{"name":"Jane Doe","email":"jane@ex.com","company":"Acme","title":"CEO","inquiry_type":"ADVISORY","message":"Need strategic advisory support for Q3 planning"}`)
	w := do(r, http.MethodPost, "/api/consultation", payload)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), `"field":"inquiry_type"`)

	w = do(r, http.MethodGet, "/api/consultations", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestUnknownConsultationIsNotFound(t *testing.T) {
	r := buildRouter(t, testConfig())
	w := do(r, http.MethodGet, "/api/consultation/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAmbientRoutes(t *testing.T) {
	r := buildRouter(t, testConfig())

	w := do(r, http.MethodGet, "/", nil)
	assert.JSONEq(t, `{"message":"Executive consultation API is running"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	for _, path := range []string{"/api", "/api/"} {
		w = do(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Empty(t, w.Header().Get("Location"), path)
		assert.JSONEq(t, `{"message":"Executive consultation API is running"}`, w.Body.String(), path)
	}

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/ready", nil).Code)

	w = do(r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestStatusRoutes(t *testing.T) {
	r := buildRouter(t, testConfig())

	w := do(r, http.MethodPost, "/api/status", []byte(`{"client_name":"   "}`))
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/status", []byte(`{"client_name":"uptime-monitor"}`))
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var checks []models.StatusCheck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &checks))
	require.Len(t, checks, 1)
	assert.Equal(t, "uptime-monitor", checks[0].ClientName)
}

func TestPrefixOnlyMount(t *testing.T) {
	cfg := testConfig()
	cfg.MountUnprefixed = false
	cfg.Env = config.EnvProduction
	cfg.Metrics.Enabled = false
	r := buildRouter(t, cfg)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/consultations", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/consultations", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/metrics", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/docs/index.html", nil).Code)
}
