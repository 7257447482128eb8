package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"kakeibo/internal/core"
)

type errorResponse struct {
	Error string `json:"error"`
}

type summaryResponse struct {
	Categories []core.CategoryTotal `json:"categories"`
	Total      int64                `json:"total"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// handleExpenses lists records on GET and creates one on POST.
func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.store.Records())

	case http.MethodPost:
		s.handleCreateExpense(w, r)

	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request format"})
		return
	}

	date := strings.TrimSpace(r.Form.Get("date"))
	if date == "" {
		date = time.Now().Format(core.DateLayout)
	}
	category := strings.TrimSpace(r.Form.Get("category"))
	amount := strings.TrimSpace(r.Form.Get("amount"))
	memo := r.Form.Get("memo")

	rec, err := s.store.Add(r.Context(), date, category, amount, memo)
	if err != nil {
		if errors.Is(err, core.ErrInvalidAmount) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "invalid amount"})
			return
		}
		slog.ErrorContext(r.Context(), "Failed to save expense",
			"error", err,
			"date", date,
			"category", category,
			"operation", "add")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "error saving expense"})
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

// handleDeleteExpense removes a record by id. Unknown ids still answer 204:
// delete is a silent no-op on a miss.
func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete && r.Method != http.MethodPost {
		w.Header().Set("Allow", "DELETE, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request format"})
		return
	}

	idStr := strings.TrimSpace(r.Form.Get("id"))
	if idStr == "" {
		idStr = strings.TrimSpace(r.URL.Query().Get("id"))
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid expense id"})
		return
	}

	if err := s.store.Delete(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Failed to delete expense",
			"error", err,
			"id", id,
			"operation", "delete")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "error deleting expense"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleSummary reports per-category buckets in fixed category order plus
// the grand total over every record.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	buckets := s.store.CategorySummary()
	resp := summaryResponse{Total: s.store.Total()}
	for _, c := range s.store.Categories() {
		resp.Categories = append(resp.Categories, core.CategoryTotal{Name: c, Amount: buckets[c]})
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleExportCSV hands out the CSV text; copying it to the clipboard and
// notifying the user is the caller's business.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(s.store.CSV()))
}
