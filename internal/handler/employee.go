package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/repository"
)

type EmployeeHandler struct {
	Repo repository.EmployeeRepository
}

func (h EmployeeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/employees", h.list)
	r.Get("/employees/departments", h.departments)
	r.Get("/employees/{id}", h.get)
	r.Post("/employees", h.create)
	r.Put("/employees/{id}", h.update)
	r.Delete("/employees/{id}", h.delete)
}

func (h EmployeeHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h EmployeeHandler) departments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, repository.Departments)
}

func (h EmployeeHandler) get(w http.ResponseWriter, r *http.Request) {
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

type createEmployeeRequest struct {
	Name             string                  `json:"name" validate:"required"`
	Email            string                  `json:"email" validate:"required,email"`
	Phone            string                  `json:"phone"`
	Department       string                  `json:"department" validate:"required"`
	Position         string                  `json:"position"`
	Status           string                  `json:"status" validate:"omitempty,oneof=active inactive"`
	JoinDate         string                  `json:"joinDate" validate:"omitempty,datetime=2006-01-02"`
	Salary           decimal.Decimal         `json:"salary"`
	Address          string                  `json:"address"`
	EmergencyContact domain.EmergencyContact `json:"emergencyContact"`
}

func (h EmployeeHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.Repo.Create(r.Context(), repository.CreateEmployeeParams{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Department:       req.Department,
		Position:         req.Position,
		Status:           domain.RecordStatus(req.Status),
		JoinDate:         req.JoinDate,
		Salary:           req.Salary,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type updateEmployeeRequest struct {
	Name             *string                  `json:"name"`
	Email            *string                  `json:"email"`
	Phone            *string                  `json:"phone"`
	Department       *string                  `json:"department"`
	Position         *string                  `json:"position"`
	Status           *string                  `json:"status"`
	JoinDate         *string                  `json:"joinDate"`
	Salary           *decimal.Decimal         `json:"salary"`
	Address          *string                  `json:"address"`
	EmergencyContact *domain.EmergencyContact `json:"emergencyContact"`
}

func (h EmployeeHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	params := repository.UpdateEmployeeParams{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Department:       req.Department,
		Position:         req.Position,
		JoinDate:         req.JoinDate,
		Salary:           req.Salary,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
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

func (h EmployeeHandler) delete(w http.ResponseWriter, r *http.Request) {
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

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
