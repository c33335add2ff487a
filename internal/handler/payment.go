package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/repository"
	"github.com/syedsmuzakkir/Gym-Portal/internal/service"
)

type PaymentHandler struct {
	Service *service.PaymentService
	Repo    repository.PaymentRepository
	Links   repository.PaymentLinkRepository
}

func (h PaymentHandler) RegisterRoutes(r chi.Router) {
	r.Get("/payments", h.list)
	r.Get("/payments/stats", h.stats)
	r.Get("/payments/{id}", h.get)
	r.Post("/payments", h.process)
	r.Put("/payments/{id}/status", h.updateStatus)

	r.Get("/payment-links", h.listLinks)
	r.Post("/payment-links", h.createLink)
	r.Post("/payment-links/{id}/click", h.clickLink)
	r.Post("/payment-links/{id}/cancel", h.cancelLink)
}

func (h PaymentHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h PaymentHandler) stats(w http.ResponseWriter, r *http.Request) {
	s, err := h.Repo.Stats(r.Context(), time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h PaymentHandler) get(w http.ResponseWriter, r *http.Request) {
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

type processPaymentRequest struct {
	CustomerID  int64           `json:"customerId" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method" validate:"required,oneof=cash razorpay stripe bank_transfer"`
	Description string          `json:"description"`
	InvoiceID   *int64          `json:"invoiceId"`
}

// process records the payment and, for razorpay/stripe, runs the single
// gateway settlement attempt before responding, matching the synchronous
// await of the checkout flow. A gateway rejection leaves a failed payment
// behind and surfaces the provider message.
func (h PaymentHandler) process(w http.ResponseWriter, r *http.Request) {
	var req processPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	created, err := h.Service.Process(r.Context(), service.ProcessPaymentInput{
		CustomerID:  req.CustomerID,
		Amount:      req.Amount,
		Method:      domain.PaymentMethod(req.Method),
		Description: req.Description,
		InvoiceID:   req.InvoiceID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	method := domain.PaymentMethod(req.Method)
	if method == domain.MethodRazorpay || method == domain.MethodStripe {
		settled, err := h.Service.Settle(r.Context(), created.ID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		created = settled
	}
	writeJSON(w, http.StatusCreated, created)
}

type updatePaymentStatusRequest struct {
	Status               string  `json:"status" validate:"required,oneof=pending processing completed failed cancelled refunded"`
	GatewayTransactionID *string `json:"gatewayTransactionId"`
}

func (h PaymentHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req updatePaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.Service.UpdateStatus(r.Context(), id, domain.PaymentStatus(req.Status), req.GatewayTransactionID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h PaymentHandler) listLinks(w http.ResponseWriter, r *http.Request) {
	items, err := h.Links.List(r.Context(), time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type createLinkRequest struct {
	CustomerID  int64           `json:"customerId" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	ExpiryDate  string          `json:"expiryDate" validate:"required,datetime=2006-01-02"`
}

func (h PaymentHandler) createLink(w http.ResponseWriter, r *http.Request) {
	var req createLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.Service.CreateLink(r.Context(), service.CreateLinkInput{
		CustomerID:  req.CustomerID,
		Amount:      req.Amount,
		Description: req.Description,
		ExpiryDate:  req.ExpiryDate,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h PaymentHandler) clickLink(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	updated, err := h.Links.RecordClick(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h PaymentHandler) cancelLink(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	updated, err := h.Links.UpdateStatus(r.Context(), id, domain.LinkCancelled)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
