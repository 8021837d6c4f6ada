// Package http provides the HTTP presentation layer of the route finder.
// It exposes search sessions as a JSON API; every search decision is made by the session's controller.
package http

import (
	"context"
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/airfare-routefinder/route-finder/internal/adapter/http/response"
	"github.com/airfare-routefinder/route-finder/internal/domain"
	"github.com/airfare-routefinder/route-finder/internal/infrastructure/logger"
	"github.com/airfare-routefinder/route-finder/internal/usecase"
)

// SearchHandler handles HTTP requests for cities and search sessions.
type SearchHandler struct {
	sessions usecase.SessionManager
	catalog  *domain.CityCatalog
	log      *logger.Logger
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(sessions usecase.SessionManager, catalog *domain.CityCatalog, log *logger.Logger) *SearchHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &SearchHandler{
		sessions: sessions,
		catalog:  catalog,
		log:      log,
	}
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *SearchHandler) Health(c echo.Context) error {
	return response.Health(c, h.sessions.Len())
}

// ListCities handles GET /api/v1/cities
//
// @Summary List selectable cities
// @Description Returns the city catalog in display order with the default selection
// @Tags cities
// @Produce json
// @Success 200 {object} CitiesResponseDTO
// @Router /api/v1/cities [get]
func (h *SearchHandler) ListCities(c echo.Context) error {
	return response.OK(c, ToCitiesResponseDTO(h.catalog))
}

// CreateSession handles POST /api/v1/sessions
//
// @Summary Start a search session
// @Description Creates a search form pre-filled with the default cities and an empty result
// @Tags sessions
// @Produce json
// @Success 201 {object} SessionStateDTO
// @Router /api/v1/sessions [post]
func (h *SearchHandler) CreateSession(c echo.Context) error {
	s := h.sessions.Create()
	return response.Created(c, ToSessionStateDTO(s.ID, s.Controller.Snapshot()))
}

// GetSession handles GET /api/v1/sessions/:id
//
// @Summary Get session state
// @Description Returns the search form and the visible result; poll this after an async search
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionStateDTO
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{id} [get]
func (h *SearchHandler) GetSession(c echo.Context) error {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToSessionStateDTO(s.ID, s.Controller.Snapshot()))
}

// UpdateQuery handles PATCH /api/v1/sessions/:id/query
//
// @Summary Edit the search form
// @Description Sets any of fromCity, toCity and rankBy. The visible result is left as is until the next search.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body UpdateQueryRequest true "Fields to change"
// @Success 200 {object} SessionStateDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{id}/query [patch]
func (h *SearchHandler) UpdateQuery(c echo.Context) error {
	var req UpdateQueryRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}
	if req.IsEmpty() {
		return response.ValidationErrorWithMessage(c, "at least one of fromCity, toCity or rankBy is required")
	}

	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	ctrl := s.Controller
	if req.FromCity != nil {
		ctrl.SetFromCity(*req.FromCity)
	}
	if req.ToCity != nil {
		ctrl.SetToCity(*req.ToCity)
	}
	if req.RankBy != nil {
		// already validated, so parsing cannot fail here
		rankBy, _ := domain.ParseRankBy(*req.RankBy)
		if err := ctrl.SetRankBy(rankBy); err != nil {
			return h.handleError(c, err)
		}
	}

	return response.OK(c, ToSessionStateDTO(s.ID, ctrl.Snapshot()))
}

// RunSearch handles POST /api/v1/sessions/:id/search
//
// @Summary Run the search
// @Description Validates the form and queries the connection lookup service. Every outcome,
// @Description including failed and no_matches, is a 200 carrying the settled state.
// @Description With async=true the call returns 202 with the pending state at once.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param async query bool false "Return immediately with the pending state"
// @Success 200 {object} SessionStateDTO "Settled state"
// @Success 202 {object} SessionStateDTO "Pending state (async)"
// @Failure 400 {object} response.ErrorDetail "Invalid async flag"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{id}/search [post]
func (h *SearchHandler) RunSearch(c echo.Context) error {
	async := false
	if raw := c.QueryParam("async"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "async must be a boolean")
		}
		async = v
	}

	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	if async {
		// the lookup outlives this request; the controller cancels it when superseded or closed
		state, _ := s.Controller.Start(context.WithoutCancel(c.Request().Context()))
		if state.Result.State().IsTerminal() {
			return response.OK(c, ToSessionStateDTO(s.ID, state))
		}
		return response.Accepted(c, ToSessionStateDTO(s.ID, state))
	}

	result := s.Controller.RunSearch(c.Request().Context())
	state := s.Controller.Snapshot()
	if !state.Result.State().IsTerminal() {
		// superseded or closed meanwhile; answer with this request's own outcome
		state.Result = result
	}
	return response.OK(c, ToSessionStateDTO(s.ID, state))
}

// ResetSession handles POST /api/v1/sessions/:id/reset
//
// @Summary Clear the result
// @Description Sets the result back to empty and cancels an in-flight search; the form is kept
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionStateDTO
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{id}/reset [post]
func (h *SearchHandler) ResetSession(c echo.Context) error {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	s.Controller.Reset()
	return response.OK(c, ToSessionStateDTO(s.ID, s.Controller.Snapshot()))
}

// DeleteSession handles DELETE /api/v1/sessions/:id
//
// @Summary End a search session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{id} [delete]
func (h *SearchHandler) DeleteSession(c echo.Context) error {
	if err := h.sessions.Delete(c.Param("id")); err != nil {
		return h.handleError(c, err)
	}
	return response.NoContent(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *SearchHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to HTTP responses.
func (h *SearchHandler) handleError(c echo.Context, err error) error {
	switch {
	case domain.IsSessionNotFound(err):
		return response.SessionNotFound(c)
	case errors.Is(err, domain.ErrInvalidRankBy):
		return response.ValidationErrorWithMessage(c, err.Error())
	default:
		h.log.Error().Err(err).Str("path", c.Path()).Msg("unexpected handler error")
		return response.InternalServerError(c)
	}
}
