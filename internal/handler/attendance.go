package handler

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/repository"
	"github.com/syedsmuzakkir/Gym-Portal/internal/server/authctx"
	"github.com/syedsmuzakkir/Gym-Portal/internal/service"
	"github.com/xuri/excelize/v2"
)

type AttendanceHandler struct {
	Service *service.AttendanceService
	Repo    repository.AttendanceRepository
}

func (h AttendanceHandler) RegisterRoutes(r chi.Router) {
	r.Get("/attendance", h.list)
	r.Get("/attendance/stats", h.stats)
	r.Get("/attendance/export", h.export)
	r.Get("/attendance/member/{memberId}", h.listByMember)
	r.Post("/attendance/scan", h.scan)
}

type scanRequest struct {
	Code     string `json:"code" validate:"required"`
	Location string `json:"location"`
}

func (h AttendanceHandler) scan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	scannedBy := "Scanner"
	if user := authctx.FromContext(r.Context()); user != nil {
		scannedBy = user.Email
	}

	record, event, err := h.Service.Scan(r.Context(), req.Code, scannedBy, req.Location)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"event":  event,
		"record": record,
	})
}

func (h AttendanceHandler) list(w http.ResponseWriter, r *http.Request) {
	date, err := dateQuery(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date")
		return
	}
	if date == "" {
		items, err := h.Repo.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, items)
		return
	}
	items, err := h.Repo.ListByDate(r.Context(), date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h AttendanceHandler) listByMember(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "memberId")
	items, err := h.Repo.ListByMember(r.Context(), memberID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h AttendanceHandler) stats(w http.ResponseWriter, r *http.Request) {
	date, err := dateQuery(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date")
		return
	}
	st, err := h.Service.Stats(r.Context(), date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h AttendanceHandler) export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	date, err := dateQuery(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date")
		return
	}
	var items []domain.Attendance
	if date != "" {
		items, err = h.Repo.ListByDate(r.Context(), date)
	} else {
		items, err = h.Repo.List(r.Context())
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	filenameSuffix := time.Now().Format("20060102_150405")
	if date != "" {
		filenameSuffix = date
	}

	switch format {
	case "csv":
		data, err := exportAttendanceCSV(items)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"attendance_%s.csv\"", filenameSuffix))
		_, _ = w.Write(data)
	case "xlsx", "excel":
		data, err := exportAttendanceXLSX(items)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"attendance_%s.xlsx\"", filenameSuffix))
		_, _ = w.Write(data)
	default:
		writeError(w, http.StatusBadRequest, "invalid format (use csv or xlsx)")
	}
}

func exportAttendanceCSV(items []domain.Attendance) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"id", "member_id", "member_name", "member_type", "date", "check_in", "check_out", "status", "scanned_by", "location"})
	for _, a := range items {
		_ = w.Write([]string{
			strconv.FormatInt(a.ID, 10),
			a.MemberID,
			a.MemberName,
			string(a.MemberType),
			a.Date,
			formatClock(a.CheckIn),
			formatClock(a.CheckOut),
			string(a.Status),
			a.ScannedBy,
			a.Location,
		})
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func exportAttendanceXLSX(items []domain.Attendance) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Attendance"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	header := []string{"ID", "Member ID", "Member Name", "Member Type", "Date", "Check In", "Check Out", "Status", "Scanned By", "Location"}
	for c, v := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(sheet, cell, v)
	}
	for r, a := range items {
		row := r + 2
		values := []any{
			a.ID,
			a.MemberID,
			a.MemberName,
			string(a.MemberType),
			a.Date,
			formatClock(a.CheckIn),
			formatClock(a.CheckOut),
			string(a.Status),
			a.ScannedBy,
			a.Location,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 8)
	_ = f.SetColWidth(sheet, "B", "B", 12)
	_ = f.SetColWidth(sheet, "C", "C", 24)
	_ = f.SetColWidth(sheet, "D", "D", 14)
	_ = f.SetColWidth(sheet, "E", "E", 12)
	_ = f.SetColWidth(sheet, "F", "G", 10)
	_ = f.SetColWidth(sheet, "H", "H", 10)
	_ = f.SetColWidth(sheet, "I", "J", 18)

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})
	_ = f.SetCellStyle(sheet, "A1", "J1", style)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatClock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}
