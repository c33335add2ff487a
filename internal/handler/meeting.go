package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/repository"
)

type MeetingHandler struct {
	Repo repository.MeetingRepository
}

func (h MeetingHandler) RegisterRoutes(r chi.Router) {
	r.Get("/meetings", h.list)
	r.Get("/meetings/{id}", h.get)
	r.Post("/meetings", h.create)
	r.Put("/meetings/{id}", h.update)
	r.Delete("/meetings/{id}", h.delete)
}

func (h MeetingHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h MeetingHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	item, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

type createMeetingRequest struct {
	Title     string   `json:"title" validate:"required"`
	Type      string   `json:"type" validate:"required"`
	Date      string   `json:"date" validate:"required"`
	Duration  int      `json:"duration" validate:"required,min=1"`
	Location  string   `json:"location"`
	Organizer string   `json:"organizer" validate:"required"`
	Attendees []string `json:"attendees"`
	Agenda    string   `json:"agenda"`
	Reminders []int    `json:"reminders"`
}

func (h MeetingHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date")
		return
	}
	created, err := h.Repo.Create(r.Context(), domain.Meeting{
		Title:     req.Title,
		Type:      req.Type,
		Date:      date,
		Duration:  req.Duration,
		Location:  req.Location,
		Organizer: req.Organizer,
		Attendees: req.Attendees,
		Agenda:    req.Agenda,
		Reminders: req.Reminders,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type updateMeetingRequest struct {
	Title     *string   `json:"title"`
	Type      *string   `json:"type"`
	Date      *string   `json:"date"`
	Duration  *int      `json:"duration"`
	Location  *string   `json:"location"`
	Organizer *string   `json:"organizer"`
	Attendees *[]string `json:"attendees"`
	Agenda    *string   `json:"agenda"`
	Status    *string   `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	Reminders *[]int    `json:"reminders"`
}

func (h MeetingHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	params := repository.UpdateMeetingParams{
		Title:     req.Title,
		Type:      req.Type,
		Duration:  req.Duration,
		Location:  req.Location,
		Organizer: req.Organizer,
		Attendees: req.Attendees,
		Agenda:    req.Agenda,
		Reminders: req.Reminders,
	}
	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date")
			return
		}
		params.Date = &date
	}
	if req.Status != nil {
		status := domain.MeetingStatus(*req.Status)
		params.Status = &status
	}
	updated, err := h.Repo.Update(r.Context(), id, params)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h MeetingHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
