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

type BillingHandler struct {
	Service *service.BillingService
	Repo    repository.InvoiceRepository
}

func (h BillingHandler) RegisterRoutes(r chi.Router) {
	r.Get("/invoices", h.list)
	r.Get("/invoices/{id}", h.get)
	r.Post("/invoices", h.generate)
	r.Post("/invoices/{id}/pay", h.markPaid)
}

func (h BillingHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h BillingHandler) get(w http.ResponseWriter, r *http.Request) {
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

type generateInvoiceRequest struct {
	CustomerID int64 `json:"customerId" validate:"required"`
	Items      []struct {
		Description string          `json:"description" validate:"required"`
		Quantity    int             `json:"quantity" validate:"gt=0"`
		Price       decimal.Decimal `json:"price"`
	} `json:"items" validate:"required,min=1,dive"`
}

func (h BillingHandler) generate(w http.ResponseWriter, r *http.Request) {
	var req generateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	items := make([]domain.InvoiceItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	created, err := h.Service.GenerateInvoice(r.Context(), req.CustomerID, items)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h BillingHandler) markPaid(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	updated, err := h.Repo.MarkPaid(r.Context(), id, time.Now().Format(dateLayout))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
