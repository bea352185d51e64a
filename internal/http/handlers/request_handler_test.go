package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-assistance/internal/apperr"
	"service-assistance/internal/domain"
	"service-assistance/internal/http/handlers"
)

type stubRequestUsecase struct {
	createFn func(ctx context.Context, req *domain.AssistanceRequest) (int64, error)
	getFn    func(ctx context.Context, id int64) (*domain.AssistanceRequest, error)
}

func (s *stubRequestUsecase) Create(ctx context.Context, req *domain.AssistanceRequest) (int64, error) {
	if s.createFn == nil {
		panic("Create not expected in this test")
	}
	return s.createFn(ctx, req)
}

func (s *stubRequestUsecase) Get(ctx context.Context, id int64) (*domain.AssistanceRequest, error) {
	if s.getFn == nil {
		panic("Get not expected in this test")
	}
	return s.getFn(ctx, id)
}

func TestRequestHandler_Create_OK(t *testing.T) {
	t.Parallel()

	body := `{
        "customer_name": "Ivan",
        "policy_number": "POL-123",
        "lat": 41.01,
        "lon": 28.97,
        "issue_description": "flat tire"
    }`
	req := httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()

	uc := &stubRequestUsecase{
		createFn: func(ctx context.Context, r *domain.AssistanceRequest) (int64, error) {
			require.Equal(t, "Ivan", r.CustomerName)
			require.Equal(t, "POL-123", r.PolicyNumber)
			require.Equal(t, "flat tire", r.IssueDesc)
			return 7, nil
		},
	}

	h := handlers.NewRequestHandler(testLogger(), uc)
	h.Create(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/requests/7", rr.Header().Get("Location"))
	assert.JSONEq(t, `{"id": 7}`, rr.Body.String())
}

func TestRequestHandler_Create_Invalid(t *testing.T) {
	t.Parallel()

	body := `{"customer_name":""}`
	req := httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()

	uc := &stubRequestUsecase{
		createFn: func(ctx context.Context, r *domain.AssistanceRequest) (int64, error) {
			return 0, apperr.ErrInvalid
		},
	}

	h := handlers.NewRequestHandler(testLogger(), uc)
	h.Create(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "invalid input"}`, rr.Body.String())
}

func TestRequestHandler_Create_InvalidJSON(t *testing.T) {
	t.Parallel()

	body := `{"customer_name":`
	req := httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()

	uc := &stubRequestUsecase{
		createFn: func(ctx context.Context, r *domain.AssistanceRequest) (int64, error) {
			require.FailNow(t, "usecase.Create must not be called on invalid json")
			return 0, nil
		},
	}

	h := handlers.NewRequestHandler(testLogger(), uc)
	h.Create(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "invalid json"}`, rr.Body.String())
}

func TestRequestHandler_GetByID_OK(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	expected := &domain.AssistanceRequest{
		ID:           9,
		CustomerName: "Ivan",
		PolicyNumber: "POL-123",
		Lat:          41.01,
		Lon:          28.97,
		IssueDesc:    "flat tire",
		Status:       domain.StatusPending,
		CreatedAt:    createdAt,
	}

	uc := &stubRequestUsecase{
		getFn: func(ctx context.Context, id int64) (*domain.AssistanceRequest, error) {
			require.EqualValues(t, 9, id)
			return expected, nil
		},
	}

	h := handlers.NewRequestHandler(testLogger(), uc)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/requests/9", nil), "id", "9")
	rr := httptest.NewRecorder()

	h.GetByID(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.EqualValues(t, 9, resp["id"])
	assert.Equal(t, "PENDING", resp["status"])
	assert.Equal(t, "flat tire", resp["issue_description"])
}

func TestRequestHandler_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	uc := &stubRequestUsecase{
		getFn: func(ctx context.Context, id int64) (*domain.AssistanceRequest, error) {
			return nil, apperr.ErrNotFound
		},
	}

	h := handlers.NewRequestHandler(testLogger(), uc)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/requests/404", nil), "id", "404")
	rr := httptest.NewRecorder()

	h.GetByID(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error": "request not found"}`, rr.Body.String())
}

func TestRequestHandler_GetByID_InvalidID(t *testing.T) {
	t.Parallel()

	h := handlers.NewRequestHandler(testLogger(), &stubRequestUsecase{})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/requests/-1", nil), "id", "-1")
	rr := httptest.NewRecorder()

	h.GetByID(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}
