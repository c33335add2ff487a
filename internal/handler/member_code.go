package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/repository"
)

type MemberCodeHandler struct {
	Repo      repository.MemberCodeRepository
	Employees repository.EmployeeRepository
	Customers repository.CustomerRepository
}

func (h MemberCodeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/member-codes", h.list)
	r.Post("/member-codes", h.generate)
	r.Put("/member-codes/{id}/toggle", h.toggle)
}

func (h MemberCodeHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type generateCodeRequest struct {
	MemberID   string `json:"memberId" validate:"required"`
	MemberType string `json:"memberType" validate:"required,oneof=employee customer"`
}

// generate issues a fresh QR/barcode pair for a member. The member must
// exist in the matching roster; any previously active code is retired so
// only one code scans at a time.
func (h MemberCodeHandler) generate(w http.ResponseWriter, r *http.Request) {
	var req generateCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	name, err := h.memberName(r, req.MemberID, domain.MemberType(req.MemberType))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	created, err := h.Repo.Generate(r.Context(), req.MemberID, name, domain.MemberType(req.MemberType), time.Now())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h MemberCodeHandler) memberName(r *http.Request, memberID string, memberType domain.MemberType) (string, error) {
	switch memberType {
	case domain.MemberEmployee:
		employees, err := h.Employees.List(r.Context())
		if err != nil {
			return "", err
		}
		for _, e := range employees {
			if e.EmployeeID == memberID {
				return e.Name, nil
			}
		}
	case domain.MemberCustomer:
		customers, err := h.Customers.List(r.Context())
		if err != nil {
			return "", err
		}
		for _, c := range customers {
			if c.CustomerID == memberID {
				return c.Name, nil
			}
		}
	}
	return "", fmt.Errorf("member %s: %w", memberID, repository.ErrNotFound)
}

func (h MemberCodeHandler) toggle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	updated, err := h.Repo.Toggle(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
