// Package v1 implements the v1 REST API routers.
package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jobpilot/jobpilot"
	"github.com/jobpilot/jobpilot/domain/job"
	"github.com/jobpilot/jobpilot/infrastructure/api/middleware"
	"github.com/jobpilot/jobpilot/infrastructure/api/v1/dto"
)

// SessionsRouter handles session API endpoints.
type SessionsRouter struct {
	client *jobpilot.Client
	logger *slog.Logger
}

// NewSessionsRouter creates a SessionsRouter.
func NewSessionsRouter(client *jobpilot.Client) *SessionsRouter {
	return &SessionsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for session endpoints.
func (r *SessionsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", r.Save)
	router.Route("/{userID}", func(router chi.Router) {
		router.Get("/", r.Get)
		router.Patch("/", r.Update)
		router.Delete("/", r.Clear)
		router.Patch("/profile", r.UpdateProfile)
		router.Patch("/settings", r.UpdateSettings)
		router.Put("/jobs", r.ReplaceJobs)
		router.Post("/jobs", r.AddJob)
		router.Put("/skills", r.ReplaceSkills)
		router.Post("/resume", r.ImportResume)
	})

	return router
}

// Save handles POST /api/v1/sessions. Creates a session, minting a user
// id when the body carries none, or updates an existing one.
func (r *SessionsRouter) Save(w http.ResponseWriter, req *http.Request) {
	var body dto.SessionRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, middleware.NewBadRequest("invalid request body", err), r.logger)
		return
	}

	userID, err := r.client.Sessions.Save(req.Context(), body.UserID, body.ToPartial())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.SaveSessionResponse{UserID: userID})
}

// Get handles GET /api/v1/sessions/{userID}.
func (r *SessionsRouter) Get(w http.ResponseWriter, req *http.Request) {
	sess, err := r.client.Sessions.Load(req.Context(), chi.URLParam(req, "userID"))
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.NewSessionResponse(sess))
}

// Update handles PATCH /api/v1/sessions/{userID}. Fails with 404 when
// the session does not exist.
func (r *SessionsRouter) Update(w http.ResponseWriter, req *http.Request) {
	var body dto.SessionRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, middleware.NewBadRequest("invalid request body", err), r.logger)
		return
	}

	sess, err := r.client.Sessions.Update(req.Context(), chi.URLParam(req, "userID"), body.ToPartial())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.NewSessionResponse(sess))
}

// Clear handles DELETE /api/v1/sessions/{userID}. Deleting an absent
// session succeeds.
func (r *SessionsRouter) Clear(w http.ResponseWriter, req *http.Request) {
	if err := r.client.Sessions.Clear(req.Context(), chi.URLParam(req, "userID")); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateProfile handles PATCH /api/v1/sessions/{userID}/profile,
// merging the given profile fields into the stored profile.
func (r *SessionsRouter) UpdateProfile(w http.ResponseWriter, req *http.Request) {
	var body dto.SessionRequest
	if err := json.NewDecoder(req.Body).Decode(&body.Profile); err != nil {
		middleware.WriteError(w, req, middleware.NewBadRequest("invalid request body", err), r.logger)
		return
	}

	sess, err := r.client.Sessions.UpdateProfile(req.Context(), chi.URLParam(req, "userID"), body.Profile)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.NewSessionResponse(sess))
}

// UpdateSettings handles PATCH /api/v1/sessions/{userID}/settings,
// merging site preferences key-wise.
func (r *SessionsRouter) UpdateSettings(w http.ResponseWriter, req *http.Request) {
	var body dto.SessionRequest
	if err := json.NewDecoder(req.Body).Decode(&body.Settings); err != nil {
		middleware.WriteError(w, req, middleware.NewBadRequest("invalid request body", err), r.logger)
		return
	}

	sess, err := r.client.Sessions.UpdateSettings(req.Context(), chi.URLParam(req, "userID"), body.Settings)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.NewSessionResponse(sess))
}

// ReplaceJobs handles PUT /api/v1/sessions/{userID}/jobs, replacing the
// whole job list atomically.
func (r *SessionsRouter) ReplaceJobs(w http.ResponseWriter, req *http.Request) {
	var body dto.JobsRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, middleware.NewBadRequest("invalid request body", err), r.logger)
		return
	}

	userID := chi.URLParam(req, "userID")
	if err := r.client.Sessions.UpdateJobs(req.Context(), userID, body.Jobs); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	r.respondSession(w, req, userID)
}

// AddJob handles POST /api/v1/sessions/{userID}/jobs, upserting one job
// into the list by id.
func (r *SessionsRouter) AddJob(w http.ResponseWriter, req *http.Request) {
	var body job.Job
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, middleware.NewBadRequest("invalid request body", err), r.logger)
		return
	}
	if body.ID == "" {
		middleware.WriteError(w, req, middleware.NewBadRequest("job id is required", nil), r.logger)
		return
	}

	userID := chi.URLParam(req, "userID")
	if err := r.client.Sessions.AddJob(req.Context(), userID, body); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	r.respondSession(w, req, userID)
}

// ReplaceSkills handles PUT /api/v1/sessions/{userID}/skills.
func (r *SessionsRouter) ReplaceSkills(w http.ResponseWriter, req *http.Request) {
	var body dto.SkillsRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, middleware.NewBadRequest("invalid request body", err), r.logger)
		return
	}

	userID := chi.URLParam(req, "userID")
	if err := r.client.Sessions.UpdateSkills(req.Context(), userID, body.Skills); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	r.respondSession(w, req, userID)
}

// ImportResume handles POST /api/v1/sessions/{userID}/resume, storing
// the raw resume and running skill extraction.
func (r *SessionsRouter) ImportResume(w http.ResponseWriter, req *http.Request) {
	var body dto.ResumeRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, middleware.NewBadRequest("invalid request body", err), r.logger)
		return
	}
	if body.ResumeText == "" {
		middleware.WriteError(w, req, middleware.NewBadRequest("resumeText is required", nil), r.logger)
		return
	}

	sess, err := r.client.Resume.Import(req.Context(), chi.URLParam(req, "userID"), body.ResumeText)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.NewSessionResponse(sess))
}

func (r *SessionsRouter) respondSession(w http.ResponseWriter, req *http.Request, userID string) {
	sess, err := r.client.Sessions.Load(req.Context(), userID)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, dto.NewSessionResponse(sess))
}
