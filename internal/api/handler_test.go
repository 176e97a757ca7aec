package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evmkit/chain-resolver/internal/testutil"
	"github.com/evmkit/chain-resolver/pkg/types"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	handler := NewHandler(testutil.TestResolver(t), testutil.QuietLogger(), testutil.TestConfig())
	router := mux.NewRouter()
	SetupRoutes(router, handler)
	return router
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestListChains(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chains", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body ChainsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, len(body.Chains), body.Count)
	assert.NotEmpty(t, body.Chains)
	assert.Equal(t, "mainnet", body.Chains[0].Name)
}

func TestGetChain(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedID     uint64
		expectedName   string
		named          bool
	}{
		{
			name:           "by name",
			path:           "/api/v1/chains/mainnet",
			expectedStatus: http.StatusOK,
			expectedID:     1,
			expectedName:   "mainnet",
			named:          true,
		},
		{
			name:           "by uppercase name",
			path:           "/api/v1/chains/POLYGON",
			expectedStatus: http.StatusOK,
			expectedID:     137,
			expectedName:   "polygon",
			named:          true,
		},
		{
			name:           "by known id",
			path:           "/api/v1/chains/42161",
			expectedStatus: http.StatusOK,
			expectedID:     42161,
			expectedName:   "arbitrum",
			named:          true,
		},
		{
			name:           "by unknown id",
			path:           "/api/v1/chains/999999999",
			expectedStatus: http.StatusOK,
			expectedID:     999999999,
			expectedName:   "999999999",
			named:          false,
		},
		{
			name:           "invalid identifier",
			path:           "/api/v1/chains/bogus",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus != http.StatusOK {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Contains(t, body["error"], "invalid chain identifier")
				return
			}

			var detail types.ChainDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
			assert.Equal(t, tt.expectedID, detail.ChainID)
			assert.Equal(t, tt.expectedName, detail.Name)
			assert.Equal(t, tt.named, detail.Named)
		})
	}
}

func TestSchedulerEndpoints(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/start", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Starting twice surfaces an error.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/start", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/stop", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetJobStatusNotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
