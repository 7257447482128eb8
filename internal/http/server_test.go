package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"kakeibo/internal/core"
	"kakeibo/internal/slot/memory"
	"kakeibo/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	st := store.New(memory.New(), nil)
	if err := st.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return NewServer(":0", st)
}

func postForm(t *testing.T, srv *Server, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("healthz status=%d", rr.Code)
	}
}

func TestCreateExpense(t *testing.T) {
	srv := newTestServer(t)

	// Wrong method
	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/expenses", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}

	// Invalid amount
	rr = postForm(t, srv, "/expenses", url.Values{
		"date": {"2024-03-01"}, "category": {"Food"}, "amount": {"abc"},
	})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}

	// Success
	rr = postForm(t, srv, "/expenses", url.Values{
		"date": {"2024-03-01"}, "category": {"Food"}, "amount": {"1000"}, "memo": {"lunch"},
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var rec core.ExpenseRecord
	if err := json.Unmarshal(rr.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.ID == 0 || rec.Amount != 1000 || rec.Memo != "lunch" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestListExpensesNewestFirst(t *testing.T) {
	srv := newTestServer(t)

	postForm(t, srv, "/expenses", url.Values{"date": {"2024-01-01"}, "category": {"Food"}, "amount": {"100"}})
	postForm(t, srv, "/expenses", url.Values{"date": {"2024-01-02"}, "category": {"Transport"}, "amount": {"200"}})

	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/expenses", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("list status=%d", rr.Code)
	}
	var records []core.ExpenseRecord
	if err := json.Unmarshal(rr.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 2 || records[0].Category != "Transport" {
		t.Fatalf("expected newest-first listing, got %+v", records)
	}
}

func TestDeleteExpense(t *testing.T) {
	srv := newTestServer(t)

	rr := postForm(t, srv, "/expenses", url.Values{"date": {"2024-01-01"}, "category": {"Food"}, "amount": {"100"}})
	var rec core.ExpenseRecord
	if err := json.Unmarshal(rr.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rr = postForm(t, srv, "/expenses/delete", url.Values{"id": {"999999"}})
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete miss should be 204, got %d", rr.Code)
	}

	rr = postForm(t, srv, "/expenses/delete", url.Values{"id": {"abc"}})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("bad id should be 400, got %d", rr.Code)
	}

	rr = postForm(t, srv, "/expenses/delete", url.Values{"id": {strconv.FormatInt(rec.ID, 10)}})
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete status=%d", rr.Code)
	}
}

func TestSummary(t *testing.T) {
	srv := newTestServer(t)

	postForm(t, srv, "/expenses", url.Values{"date": {"2024-01-01"}, "category": {"Food"}, "amount": {"1000"}})
	postForm(t, srv, "/expenses", url.Values{"date": {"2024-01-02"}, "category": {"Snacks"}, "amount": {"500"}})

	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/summary", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("summary status=%d", rr.Code)
	}
	var resp summaryResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 1500 {
		t.Fatalf("total = %d, want 1500", resp.Total)
	}
	if len(resp.Categories) != 4 || resp.Categories[0].Name != "Food" || resp.Categories[0].Amount != 1000 {
		t.Fatalf("unexpected buckets: %+v", resp.Categories)
	}
}

func TestExportCSV(t *testing.T) {
	srv := newTestServer(t)

	postForm(t, srv, "/expenses", url.Values{"date": {"2024-03-01"}, "category": {"Food"}, "amount": {"1000"}, "memo": {"a,b"}})

	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/export.csv", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("export status=%d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("content type = %q", ct)
	}
	body := rr.Body.String()
	if !strings.HasPrefix(body, store.CSVHeader) {
		t.Fatalf("export missing header: %q", body)
	}
	if !strings.Contains(body, "a、b") {
		t.Fatalf("memo comma not substituted: %q", body)
	}
}
