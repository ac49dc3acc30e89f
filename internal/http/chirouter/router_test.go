package chirouter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"platelookup/internal/logger"
	"platelookup/internal/model"
	"platelookup/internal/service"
	serviceMocks "platelookup/internal/service/mocks"
)

func newTestRouter(t *testing.T) (*serviceMocks.MockLookupService, http.Handler, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	mockSvc := new(serviceMocks.MockLookupService)
	return mockSvc, NewRouter(mockSvc, logger.NewFromZap(zap.New(core))), logs
}

func TestHandleLookup(t *testing.T) {
	t.Run("success relays body", func(t *testing.T) {
		mockSvc, router, _ := newTestRouter(t)
		body := json.RawMessage(`{"make":"Toyota"}`)
		mockSvc.On("Lookup", mock.Anything, "AB12345").
			Return(&model.LookupResult{LicensePlate: "AB12345", Body: body}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/lookup/AB12345", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.Equal(t, `{"make":"Toyota"}`, w.Body.String())
		mockSvc.AssertExpectations(t)
	})

	t.Run("upstream failure", func(t *testing.T) {
		mockSvc, router, logs := newTestRouter(t)
		mockSvc.On("Lookup", mock.Anything, "ZZ00000").
			Return(nil, fmt.Errorf("%w: dial tcp: refused", service.ErrUpstreamFailure)).Once()

		req := httptest.NewRequest(http.MethodGet, "/lookup/ZZ00000", nil)
		req.Header.Set("X-Request-Id", "rid-42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"An error occurred while fetching the data"}`, w.Body.String())
		assert.NotContains(t, w.Body.String(), "refused")

		entries := logs.FilterMessage("lookup failed").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "ZZ00000", entries[0].ContextMap()["license_plate"])
		assert.Equal(t, "rid-42", entries[0].ContextMap()["request_id"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid plate in strict mode", func(t *testing.T) {
		mockSvc, router, _ := newTestRouter(t)
		mockSvc.On("Lookup", mock.Anything, "AB;1").Return(nil, service.ErrInvalidPlate).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/lookup/AB;1", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"invalid license plate"}`, w.Body.String())
	})

	t.Run("method not allowed", func(t *testing.T) {
		_, router, _ := newTestRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/lookup/AB12345", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("missing plate", func(t *testing.T) {
		_, router, _ := newTestRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/lookup/", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
