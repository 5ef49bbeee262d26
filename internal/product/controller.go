package product

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"woz/internal/controls"
	"woz/internal/dto"
	apperrors "woz/internal/errors"
)

const (
	maxSearchIDs = 100
	maxPageSize  = 100
)

type Controller struct {
	useCase SearchUseCase
	logger  *zap.Logger
}

func NewController(useCase SearchUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *Controller) HandleSearchProducts(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req SearchProductsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.validateSearchRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	resp, err := c.useCase.SearchProducts(r.Context(), req)
	if err != nil {
		logger.Error("search products failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError,
			dto.NewErrorResponse(traceID, http.StatusInternalServerError, dto.CodeInternal, "an unexpected error occurred"))
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

// HandleListProducts filters the catalog with the query string controls and
// returns one page. cursor and limit default to the first page.
func (c *Controller) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	query := r.URL.Query()
	cursor, limit := 0, 0
	var details []apperrors.ValidationDetail

	if v := query.Get("cursor"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "cursor",
				Message: "cursor must be a non-negative integer",
			})
		}
		cursor = n
	}
	if v := query.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxPageSize {
			details = append(details, apperrors.ValidationDetail{
				Field:   "limit",
				Message: fmt.Sprintf("limit must be between 1 and %d", maxPageSize),
			})
		}
		limit = n
	}
	if len(details) > 0 {
		c.writeValidationError(w, traceID, "validation failed", details...)
		return
	}

	resp, err := c.useCase.ListProducts(r.Context(), controls.Snapshot(controls.Query(query)), cursor, limit)
	if err != nil {
		logger.Error("list products failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError,
			dto.NewErrorResponse(traceID, http.StatusInternalServerError, dto.CodeInternal, "an unexpected error occurred"))
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) validateSearchRequest(req SearchProductsRequest) error {
	if len(req.ProductIDs) == 0 {
		msg := "productIds is required"
		return apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "productIds",
			Message: "productIds must not be empty",
		})
	}

	if len(req.ProductIDs) > maxSearchIDs {
		msg := "productIds exceeds maximum of 100"
		return apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "productIds",
			Message: msg,
		})
	}

	for _, id := range req.ProductIDs {
		if id <= 0 {
			msg := "each productId must be a positive integer"
			return apperrors.NewValidationError(msg, apperrors.ValidationDetail{
				Field:   "productIds",
				Message: msg,
			})
		}
	}

	return nil
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
