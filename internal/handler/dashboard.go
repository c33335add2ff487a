package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/syedsmuzakkir/Gym-Portal/internal/service"
)

type DashboardHandler struct {
	Service service.DashboardService
}

func (h DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard/summary", h.summary)
}

func (h DashboardHandler) summary(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.Summary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, data)
}
