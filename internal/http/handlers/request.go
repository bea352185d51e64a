package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"service-assistance/internal/apperr"
	"service-assistance/internal/logx"
)

// RequestHandler serves HTTP endpoints for assistance request intake.
type RequestHandler struct {
	usecase requestUsecase
	logger  logx.Logger
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(logger logx.Logger, uc requestUsecase) *RequestHandler {
	return &RequestHandler{usecase: uc, logger: logger}
}

// Create handles POST /requests.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequestRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	id, err := h.usecase.Create(r.Context(), req.toModel())
	switch {
	case err == nil:
		w.Header().Set("Location", "/requests/"+strconv.FormatInt(id, 10))
		writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{"id": id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// GetByID handles GET /requests/{id}.
func (h *RequestHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	req, err := h.usecase.Get(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, requestToResponse(*req))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "request not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
