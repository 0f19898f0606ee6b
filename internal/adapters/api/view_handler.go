package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherlookup.app/internal/core/lookup"
	"weatherlookup.app/pkg/errors"
)

// QueryRequest carries the free-text query; empty text is allowed
type QueryRequest struct {
	Query string `json:"query"`
}

// SearchRequest submits a city lookup; the controller rejects blank names
type SearchRequest struct {
	City string `json:"city"`
}

// HistorySelectRequest re-runs a lookup for a stored entry
type HistorySelectRequest struct {
	Name string `json:"name" binding:"required"`
}

// StateResponse is the view state plus the outcome of the intent that produced it
type StateResponse struct {
	lookup.View
	Outcome lookup.Outcome `json:"outcome,omitempty"`
}

// getState handles GET /api/state requests
func (s *HTTPServerAdapter) getState(c *gin.Context) {
	c.JSON(http.StatusOK, StateResponse{View: s.controller.View()})
}

// setQuery handles PUT /api/query requests
func (s *HTTPServerAdapter) setQuery(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	s.controller.SetQuery(req.Query)
	c.JSON(http.StatusOK, StateResponse{View: s.controller.View()})
}

// search handles POST /api/search requests
func (s *HTTPServerAdapter) search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	outcome := s.controller.SubmitCity(lookupContext(c), req.City)
	s.respondWithState(c, outcome)
}

// searchLocation handles POST /api/search/location requests
func (s *HTTPServerAdapter) searchLocation(c *gin.Context) {
	outcome := s.controller.SubmitLocation(lookupContext(c))
	s.respondWithState(c, outcome)
}

// selectHistory handles POST /api/history/select requests
func (s *HTTPServerAdapter) selectHistory(c *gin.Context) {
	var req HistorySelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	outcome := s.controller.SelectHistory(lookupContext(c), req.Name)
	s.respondWithState(c, outcome)
}

// nextHours handles POST /api/hourly/next requests
func (s *HTTPServerAdapter) nextHours(c *gin.Context) {
	s.controller.NextHours()
	c.JSON(http.StatusOK, StateResponse{View: s.controller.View()})
}

// previousHours handles POST /api/hourly/previous requests
func (s *HTTPServerAdapter) previousHours(c *gin.Context) {
	s.controller.PreviousHours()
	c.JSON(http.StatusOK, StateResponse{View: s.controller.View()})
}

func (s *HTTPServerAdapter) respondWithState(c *gin.Context, outcome lookup.Outcome) {
	view := s.controller.View()
	if view.HasError() {
		slog.Debug("Lookup finished with error", "outcome", outcome, "error", view.Error)
	}
	c.JSON(http.StatusOK, StateResponse{View: view, Outcome: outcome})
}

// lookupContext detaches the lookup from the client connection. The view state is shared,
// so a disconnecting client must not cancel a lookup or its history write.
func lookupContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}
