package chirouter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"platelookup/internal/logger"
	"platelookup/internal/model"
	"platelookup/internal/service"
)

// Handler serves the lookup endpoint on a net/http stack.
type Handler struct {
	svc service.LookupService
	log *logger.Logger
}

// NewHandler constructs a chi lookup handler.
func NewHandler(svc service.LookupService, log *logger.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Register mounts the lookup endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/lookup/{licensePlate}", h.HandleLookup)
}

// NewRouter builds a standalone chi router serving GET /lookup/{licensePlate}.
func NewRouter(svc service.LookupService, log *logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, model.LookupError{Error: "resource not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, model.LookupError{Error: "method not allowed"})
	})

	NewHandler(svc, log).Register(r)
	return r
}

// HandleLookup handles GET /lookup/{licensePlate}.
func (h *Handler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	plate := chi.URLParam(r, "licensePlate")

	res, err := h.svc.Lookup(ctx, plate)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlate) {
			h.log.Warn("lookup rejected",
				"request_id", middleware.GetReqID(ctx),
				"license_plate", plate,
			)
			writeJSON(w, http.StatusBadRequest, model.LookupError{Error: model.MsgInvalidPlate})
			return
		}
		h.log.Error("lookup failed",
			"request_id", middleware.GetReqID(ctx),
			"license_plate", plate,
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, model.LookupError{Error: model.MsgLookupFailed})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
