package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobpilot/jobpilot"
	"github.com/jobpilot/jobpilot/domain/job"
	v1 "github.com/jobpilot/jobpilot/infrastructure/api/v1"
	"github.com/jobpilot/jobpilot/infrastructure/api/v1/dto"
	"github.com/jobpilot/jobpilot/internal/config"
)

func newTestClient(t *testing.T) *jobpilot.Client {
	t.Helper()
	tmpDir := t.TempDir()
	cfg := config.NewAppConfig(
		config.WithDataDir(tmpDir),
		config.WithDBURL("sqlite:///"+filepath.Join(tmpDir, "test.db")),
		config.WithSnapshotConfig(config.NewSnapshotConfig().WithEnabled(false)),
	)
	client, err := jobpilot.New(context.Background(), jobpilot.WithConfig(cfg))
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func doJSON(t *testing.T, routes http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	routes.ServeHTTP(w, req)
	return w
}

func TestSessionsRouter_SaveAndGet(t *testing.T) {
	client := newTestClient(t)
	routes := v1.NewSessionsRouter(client).Routes()

	resume := "go developer"
	w := doJSON(t, routes, http.MethodPost, "/", dto.SessionRequest{ResumeRaw: &resume})
	require.Equal(t, http.StatusOK, w.Code)

	var saved dto.SaveSessionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&saved))
	assert.Regexp(t, `^user_\d+_[a-z0-9]{8}$`, saved.UserID)

	w = doJSON(t, routes, http.MethodGet, "/"+saved.UserID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got dto.SessionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, saved.UserID, got.UserID)
	assert.Equal(t, "go developer", got.ResumeRaw)
	assert.NotNil(t, got.Jobs)
}

func TestSessionsRouter_GetMissingIs404(t *testing.T) {
	client := newTestClient(t)
	routes := v1.NewSessionsRouter(client).Routes()

	w := doJSON(t, routes, http.MethodGet, "/user_missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionsRouter_UpdateMissingIs404(t *testing.T) {
	client := newTestClient(t)
	routes := v1.NewSessionsRouter(client).Routes()

	seniority := "senior"
	w := doJSON(t, routes, http.MethodPatch, "/user_missing", dto.SessionRequest{Seniority: &seniority})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionsRouter_InvalidBodyIs400(t *testing.T) {
	client := newTestClient(t)
	routes := v1.NewSessionsRouter(client).Routes()

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	routes.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionsRouter_ProfileMerge(t *testing.T) {
	client := newTestClient(t)
	routes := v1.NewSessionsRouter(client).Routes()

	w := doJSON(t, routes, http.MethodPatch, "/user_p/profile", map[string]any{
		"name":         "Ada",
		"currentTitle": "Engineer",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, routes, http.MethodPatch, "/user_p/profile", map[string]any{
		"currentTitle": "Senior Engineer",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got dto.SessionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.NotNil(t, got.Profile)
	assert.Equal(t, "Ada", got.Profile.Name)
	assert.Equal(t, "Senior Engineer", got.Profile.CurrentTitle)
}

func TestSessionsRouter_AddJobRequiresID(t *testing.T) {
	client := newTestClient(t)
	routes := v1.NewSessionsRouter(client).Routes()

	w := doJSON(t, routes, http.MethodPost, "/user_j/jobs", job.Job{Title: "No ID"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionsRouter_JobsLifecycle(t *testing.T) {
	client := newTestClient(t)
	routes := v1.NewSessionsRouter(client).Routes()

	w := doJSON(t, routes, http.MethodPost, "/user_j/jobs", job.Job{ID: "j1", Title: "Engineer", Company: "Acme"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, routes, http.MethodPut, "/user_j/jobs", dto.JobsRequest{
		Jobs: []job.Job{{ID: "j2", Title: "Chef", Company: "Bistro"}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got dto.SessionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Len(t, got.Jobs, 1)
	assert.Equal(t, "j2", got.Jobs[0].ID)
}

func TestSessionsRouter_Delete(t *testing.T) {
	client := newTestClient(t)
	routes := v1.NewSessionsRouter(client).Routes()

	resume := "r"
	w := doJSON(t, routes, http.MethodPost, "/", dto.SessionRequest{UserID: "user_d", ResumeRaw: &resume})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, routes, http.MethodDelete, "/user_d", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, routes, http.MethodDelete, "/user_d", nil)
	assert.Equal(t, http.StatusNoContent, w.Code, "deleting an absent session succeeds")

	w = doJSON(t, routes, http.MethodGet, "/user_d", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionsRouter_ResumeImport(t *testing.T) {
	client := newTestClient(t)
	routes := v1.NewSessionsRouter(client).Routes()

	w := doJSON(t, routes, http.MethodPost, "/user_r/resume", dto.ResumeRequest{
		ResumeText: "senior golang engineer with kubernetes in fintech",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got dto.SessionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "senior golang engineer with kubernetes in fintech", got.ResumeRaw)
	// The default keyword heuristic runs without an AI endpoint.
	assert.Contains(t, got.Skills, "Go")
	assert.Contains(t, got.Skills, "Kubernetes")
	assert.Equal(t, "senior", got.Seniority)
}

func TestMatchRouter_Match(t *testing.T) {
	client := newTestClient(t)
	sessionRoutes := v1.NewSessionsRouter(client).Routes()
	matchRoutes := v1.NewMatchRouter(client).Routes()

	resume := "go backend engineer"
	jobs := []job.Job{
		{ID: "j1", Title: "Go Backend Engineer", Company: "Acme", Description: "go backend"},
		{ID: "j2", Title: "Pastry Chef", Company: "Bistro", Description: "croissants"},
	}
	w := doJSON(t, sessionRoutes, http.MethodPost, "/", dto.SessionRequest{
		UserID:    "user_m",
		ResumeRaw: &resume,
		Jobs:      &jobs,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, matchRoutes, http.MethodPost, "/user_m", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got dto.MatchResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, 2, got.Count)
	require.Len(t, got.Jobs, 2)
	for _, j := range got.Jobs {
		assert.GreaterOrEqual(t, j.MatchScore, 0.0)
		assert.LessOrEqual(t, j.MatchScore, 100.0)
	}
}

func TestMatchRouter_MissingSessionIs404(t *testing.T) {
	client := newTestClient(t)
	routes := v1.NewMatchRouter(client).Routes()

	w := doJSON(t, routes, http.MethodPost, "/user_missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
