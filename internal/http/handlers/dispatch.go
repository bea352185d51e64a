package handlers

import (
	"errors"
	"net/http"

	"service-assistance/internal/apperr"
	"service-assistance/internal/logx"
)

// DispatchHandler serves the lifecycle endpoints of a request: dispatch,
// complete and cancel.
type DispatchHandler struct {
	usecase dispatchUsecase
	logger  logx.Logger
}

// NewDispatchHandler creates a new DispatchHandler.
func NewDispatchHandler(logger logx.Logger, uc dispatchUsecase) *DispatchHandler {
	return &DispatchHandler{usecase: uc, logger: logger}
}

// Dispatch handles POST /requests/{id}/dispatch.
func (h *DispatchHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	res, err := h.usecase.Dispatch(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, dispatchResultToResponse(res))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "request not found")
	case errors.Is(err, apperr.ErrInvalidState):
		writeError(h.logger, w, r, http.StatusConflict, "request is not pending")
	case errors.Is(err, apperr.ErrNoProviders):
		writeError(h.logger, w, r, http.StatusConflict, "no providers available")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Complete handles POST /requests/{id}/complete.
func (h *DispatchHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	res, err := h.usecase.Complete(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, releaseResultToResponse(res))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "request not found")
	case errors.Is(err, apperr.ErrInvalidState):
		writeError(h.logger, w, r, http.StatusConflict, "request is not dispatched")
	case errors.Is(err, apperr.ErrNoAssignment):
		writeError(h.logger, w, r, http.StatusConflict, "request has no assignment")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Cancel handles POST /requests/{id}/cancel.
func (h *DispatchHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	res, err := h.usecase.Cancel(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, releaseResultToResponse(res))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "request not found")
	case errors.Is(err, apperr.ErrInvalidState):
		writeError(h.logger, w, r, http.StatusConflict, "completed request cannot be cancelled")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
