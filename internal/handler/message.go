package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/repository"
	"github.com/syedsmuzakkir/Gym-Portal/internal/server/authctx"
)

type MessageHandler struct {
	Repo  repository.MessageRepository
	Users repository.UserRepository
}

func (h MessageHandler) RegisterRoutes(r chi.Router) {
	r.Get("/channels", h.channels)
	r.Get("/channels/{channel}/messages", h.list)
	r.Post("/channels/{channel}/messages", h.post)
	r.Put("/messages/{id}", h.edit)
	r.Post("/messages/{id}/react", h.react)
}

func (h MessageHandler) channels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Repo.Channels(r.Context()))
}

func (h MessageHandler) list(w http.ResponseWriter, r *http.Request) {
	channel := chi.URLParam(r, "channel")
	items, err := h.Repo.ListByChannel(r.Context(), channel)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type postMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h MessageHandler) post(w http.ResponseWriter, r *http.Request) {
	channel := chi.URLParam(r, "channel")
	var req postMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	author, role := "Unknown", ""
	if cu := authctx.FromContext(r.Context()); cu != nil {
		role = string(cu.Role)
		if u, err := h.Users.Get(r.Context(), cu.ID); err == nil {
			author = u.Name
		} else {
			author = cu.Email
		}
	}

	created, err := h.Repo.Create(r.Context(), domain.Message{
		Channel:   channel,
		Author:    author,
		Role:      role,
		Content:   req.Content,
		Timestamp: time.Now(),
		Reactions: []domain.Reaction{},
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type editMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h MessageHandler) edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req editMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.Repo.Edit(r.Context(), id, req.Content)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

type reactRequest struct {
	Emoji string `json:"emoji" validate:"required"`
}

func (h MessageHandler) react(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req reactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.Repo.React(r.Context(), id, req.Emoji)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
