package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/repository"
)

type CustomerHandler struct {
	Repo     repository.CustomerRepository
	Payments repository.PaymentRepository
	Invoices repository.InvoiceRepository
}

func (h CustomerHandler) RegisterRoutes(r chi.Router) {
	r.Get("/customers", h.list)
	r.Get("/customers/plans", h.plans)
	r.Get("/customers/{id}", h.get)
	r.Get("/customers/{id}/payments", h.payments)
	r.Get("/customers/{id}/invoices", h.invoices)
}

func (h CustomerHandler) RegisterManagerRoutes(r chi.Router) {
	r.Post("/customers", h.create)
	r.Put("/customers/{id}", h.update)
	r.Delete("/customers/{id}", h.delete)
}

func (h CustomerHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h CustomerHandler) plans(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Repo.Plans(r.Context()))
}

func (h CustomerHandler) get(w http.ResponseWriter, r *http.Request) {
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

func (h CustomerHandler) payments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	items, err := h.Payments.ListByCustomer(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h CustomerHandler) invoices(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	items, err := h.Invoices.ListByCustomer(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type createCustomerRequest struct {
	Name         string               `json:"name" validate:"required"`
	Email        string               `json:"email" validate:"required,email"`
	Phone        string               `json:"phone"`
	Address      string               `json:"address"`
	Status       string               `json:"status" validate:"omitempty,oneof=active inactive"`
	JoinDate     string               `json:"joinDate" validate:"omitempty,datetime=2006-01-02"`
	Subscription *domain.Subscription `json:"subscription"`
}

func (h CustomerHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.Repo.Create(r.Context(), repository.CreateCustomerParams{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Status:       domain.RecordStatus(req.Status),
		JoinDate:     req.JoinDate,
		Subscription: req.Subscription,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type updateCustomerRequest struct {
	Name         *string              `json:"name"`
	Email        *string              `json:"email"`
	Phone        *string              `json:"phone"`
	Address      *string              `json:"address"`
	Status       *string              `json:"status"`
	JoinDate     *string              `json:"joinDate"`
	Subscription *domain.Subscription `json:"subscription"`
	TotalPaid    *decimal.Decimal     `json:"totalPaid"`
	LastPayment  *string              `json:"lastPayment"`
}

func (h CustomerHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	params := repository.UpdateCustomerParams{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		JoinDate:     req.JoinDate,
		Subscription: req.Subscription,
		TotalPaid:    req.TotalPaid,
		LastPayment:  req.LastPayment,
	}
	if req.Status != nil {
		status := domain.RecordStatus(*req.Status)
		params.Status = &status
	}
	updated, err := h.Repo.Update(r.Context(), id, params)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h CustomerHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}
