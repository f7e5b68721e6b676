package v1

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jobpilot/jobpilot"
	"github.com/jobpilot/jobpilot/infrastructure/api/middleware"
	"github.com/jobpilot/jobpilot/infrastructure/api/v1/dto"
)

// MatchRouter handles matching API endpoints.
type MatchRouter struct {
	client *jobpilot.Client
	logger *slog.Logger
}

// NewMatchRouter creates a MatchRouter.
func NewMatchRouter(client *jobpilot.Client) *MatchRouter {
	return &MatchRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for matching endpoints.
func (r *MatchRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/{userID}", r.Match)

	return router
}

// Match handles POST /api/v1/match/{userID}. Runs the full matching
// pipeline and returns the scored, reordered job list.
func (r *MatchRouter) Match(w http.ResponseWriter, req *http.Request) {
	jobs, err := r.client.Matcher.Match(req.Context(), chi.URLParam(req, "userID"))
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.NewMatchResponse(jobs))
}
