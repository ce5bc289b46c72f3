package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dseu-petition/petition-api/internal/pdf"
	"github.com/dseu-petition/petition-api/internal/service"
)

// AdminHandler serves the review workflow and the admin dashboard. Admin
// access is enforced by the router, not here.
type AdminHandler struct {
	petitions *service.PetitionService
	stats     *service.StatsService
	renderer  *pdf.Renderer
}

func NewAdminHandler(petitions *service.PetitionService, stats *service.StatsService, renderer *pdf.Renderer) *AdminHandler {
	return &AdminHandler{petitions: petitions, stats: stats, renderer: renderer}
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Admin(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	search := r.URL.Query().Get("search")
	petitions, err := h.petitions.List(r.Context(), status, search)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"petitions": petitions,
		"total":     len(petitions),
	})
}

func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "petitionId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid petition id")
		return
	}
	petition, err := h.petitions.Get(r.Context(), id)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, petition)
}

func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "petitionId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid petition id")
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	petition, err := h.petitions.Review(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, petition)
}

func (h *AdminHandler) PDF(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "petitionId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid petition id")
		return
	}
	petition, err := h.petitions.Get(r.Context(), id)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	servePetitionPDF(w, r, h.renderer, petition)
}
