package session

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"woz/internal/controls"
	"woz/internal/domain"
	"woz/internal/dto"
	apperrors "woz/internal/errors"
)

type ProviderLister interface {
	Providers() []string
}

type Controller struct {
	manager   *Manager
	providers ProviderLister
	logger    *zap.Logger
}

func NewController(manager *Manager, providers ProviderLister, logger *zap.Logger) *Controller {
	return &Controller{
		manager:   manager,
		providers: providers,
		logger:    logger,
	}
}

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	s, err := c.manager.Create(r.Context())
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	snap := s.Snapshot()
	c.writeJSON(w, http.StatusCreated, dto.CreateSessionResponse{
		SessionID: snap.ID,
		Providers: c.providers.Providers(),
		Controls:  toControlsDTO(snap.Controls),
		View:      snap.View,
	})
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	s, err := c.manager.Get(chi.URLParam(r, "sessionId"))
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toViewResponse(s.Snapshot()))
}

// HandleCards writes the rendered list as an HTML fragment.
func (c *Controller) HandleCards(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	s, err := c.manager.Get(chi.URLParam(r, "sessionId"))
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	var buf bytes.Buffer
	if err := s.WriteHTML(&buf); err != nil {
		c.handleError(w, traceID, apperrors.NewInternalError("rendering cards", err), logger)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("failed to write cards", zap.Error(err))
	}
}

func (c *Controller) HandleUpdateControls(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	s, err := c.manager.Get(chi.URLParam(r, "sessionId"))
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	var req dto.UpdateControlsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	values := make(map[string]string, len(controls.Names))
	for name, value := range map[string]*string{
		controls.Search:   req.Search,
		controls.Sort:     req.Sort,
		controls.Country:  req.Country,
		controls.Provider: req.Provider,
		controls.Rating:   req.Rating,
	} {
		if value != nil {
			values[name] = *value
		}
	}
	if set := s.SetControls(values); set < len(values) {
		logger.Debug("ignoring absent controls", zap.Int("requested", len(values)), zap.Int("set", set))
	}

	c.writeJSON(w, http.StatusOK, toViewResponse(s.Snapshot()))
}

func (c *Controller) HandleClearControls(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	s, err := c.manager.Get(chi.URLParam(r, "sessionId"))
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	s.ClearControls()
	c.writeJSON(w, http.StatusOK, toViewResponse(s.Snapshot()))
}

func (c *Controller) HandleScroll(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	s, err := c.manager.Get(chi.URLParam(r, "sessionId"))
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	var req dto.ScrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}
	if req.DistanceToBottom == nil || *req.DistanceToBottom < 0 {
		c.writeValidationError(w, traceID, "validation failed", apperrors.ValidationDetail{
			Field:   "distanceToBottom",
			Message: "distanceToBottom must be a non-negative integer",
		})
		return
	}

	rendered, cursor, hasMore := s.Scroll(*req.DistanceToBottom)
	c.writeJSON(w, http.StatusOK, dto.ScrollResponse{
		Rendered: rendered,
		Cursor:   cursor,
		HasMore:  hasMore,
	})
}

func (c *Controller) HandleDelete(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	if err := c.manager.Delete(chi.URLParam(r, "sessionId")); err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toControlsDTO(st domain.FilterState) dto.ControlsDTO {
	return dto.ControlsDTO{
		Search:    st.Search,
		Sort:      string(st.Sort),
		Country:   st.Country,
		Provider:  st.Provider,
		MinRating: st.MinRating,
	}
}

func toViewResponse(snap Snapshot) dto.SessionViewResponse {
	return dto.SessionViewResponse{
		SessionID: snap.ID,
		Controls:  toControlsDTO(snap.Controls),
		Total:     snap.Total,
		Cursor:    snap.Cursor,
		View:      snap.View,
	}
}

func (c *Controller) handleError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if nf, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound,
			dto.NewErrorResponse(traceID, http.StatusNotFound, dto.CodeNotFound, nf.Message))
		return
	}

	if ce, ok := apperrors.IsConflictError(err); ok {
		logger.Warn("session limit reached", zap.Int("sessions", c.manager.Len()))
		c.writeJSON(w, http.StatusTooManyRequests,
			dto.NewErrorResponse(traceID, http.StatusTooManyRequests, dto.CodeTooManySessions, ce.Message))
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError,
		dto.NewErrorResponse(traceID, http.StatusInternalServerError, dto.CodeInternal, "an unexpected error occurred"))
}

func (c *Controller) writeValidationError(w http.ResponseWriter, traceID, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest,
		dto.NewErrorResponse(traceID, http.StatusBadRequest, dto.CodeValidation, message, details...))
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
