package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codescope/src/config"
)

func newTestServer() *Server {
	return NewServer(config.DefaultConfig())
}

func doRequest(s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	w := doRequest(newTestServer(), http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["version"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestSupportedLanguagesEndpoint(t *testing.T) {
	w := doRequest(newTestServer(), http.MethodGet, "/api/v1/supported-languages", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		SupportedLanguages []struct {
			Language   string   `json:"language"`
			Extensions []string `json:"extensions"`
		} `json:"supported_languages"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, 6, body.Total)
	assert.Equal(t, "python", body.SupportedLanguages[0].Language)
	assert.Equal(t, []string{".py"}, body.SupportedLanguages[0].Extensions)
}

func TestAnalyzeEndpointRejectsMissingPath(t *testing.T) {
	w := doRequest(newTestServer(), http.MethodPost, "/api/v1/analyze", []byte(`{}`))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestAnalyzeEndpointRejectsMalformedJSON(t *testing.T) {
	w := doRequest(newTestServer(), http.MethodPost, "/api/v1/analyze", []byte(`{not json`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeEndpointMissingDirectory(t *testing.T) {
	body, _ := json.Marshal(AnalyzeRequest{Path: filepath.Join(t.TempDir(), "absent")})
	w := doRequest(newTestServer(), http.MethodPost, "/api/v1/analyze", body)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestAnalyzeEndpointSuccess(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "app.py"),
		[]byte("password = \"x\"\nvalue = compute()\n"), 0o644))

	s := newTestServer()
	body, _ := json.Marshal(AnalyzeRequest{Path: dir})
	w := doRequest(s, http.MethodPost, "/api/v1/analyze", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success        bool `json:"success"`
		AnalysisResult struct {
			Summary struct {
				TotalFiles    int `json:"total_files"`
				TotalFindings int `json:"total_findings"`
			} `json:"summary"`
		} `json:"analysis_result"`
		ProcessingTime float64 `json:"processing_time"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.AnalysisResult.Summary.TotalFiles)
	assert.Equal(t, 1, resp.AnalysisResult.Summary.TotalFindings)
	assert.GreaterOrEqual(t, resp.ProcessingTime, 0.0)

	// Counters reflect the completed analysis.
	mw := doRequest(s, http.MethodGet, "/api/v1/metrics", nil)
	require.Equal(t, http.StatusOK, mw.Code)

	var metrics map[string]any
	require.NoError(t, json.Unmarshal(mw.Body.Bytes(), &metrics))
	assert.EqualValues(t, 1, metrics["analyses_run"])
	assert.EqualValues(t, 1, metrics["files_analyzed"])
	assert.EqualValues(t, 1, metrics["findings_emitted"])
}

func TestMetricsStartAtZero(t *testing.T) {
	w := doRequest(newTestServer(), http.MethodGet, "/api/v1/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var metrics map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &metrics))
	assert.EqualValues(t, 0, metrics["analyses_run"])
	assert.EqualValues(t, 0, metrics["clones_detected"])
}
