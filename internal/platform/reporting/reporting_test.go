package reporting

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

type fakeRow struct {
	value int
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if p, ok := dest[0].(*int); ok {
		*p = r.value
	}
	return nil
}

// fakeQuerier routes each count query to a canned value by SQL shape.
type fakeQuerier struct {
	total     int
	today     int
	hospitals int
	err       error
}

func (q fakeQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	if q.err != nil {
		return fakeRow{err: q.err}
	}
	switch {
	case strings.Contains(sql, "DISTINCT hospital_name"):
		return fakeRow{value: q.hospitals}
	case strings.Contains(sql, "CURRENT_DATE"):
		return fakeRow{value: q.today}
	default:
		return fakeRow{value: q.total}
	}
}

func TestSnapshot(t *testing.T) {
	svc := NewService(fakeQuerier{total: 12, today: 3, hospitals: 5})

	snap, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.TotalBirths != 12 {
		t.Errorf("expected 12 total, got %d", snap.TotalBirths)
	}
	if snap.TodayBirths != 3 {
		t.Errorf("expected 3 today, got %d", snap.TodayBirths)
	}
	if snap.HospitalsCount != 5 {
		t.Errorf("expected 5 hospitals, got %d", snap.HospitalsCount)
	}
}

func TestSnapshot_Empty(t *testing.T) {
	svc := NewService(fakeQuerier{})

	snap, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.TotalBirths != 0 || snap.TodayBirths != 0 || snap.HospitalsCount != 0 {
		t.Errorf("expected zero counts on an empty table, got %+v", snap)
	}
}

func TestSnapshot_QueryError(t *testing.T) {
	svc := NewService(fakeQuerier{err: errors.New("connection refused")})

	if _, err := svc.Snapshot(context.Background()); err == nil {
		t.Fatal("expected error to propagate")
	}
}

func TestHandler_GetStatistics(t *testing.T) {
	h := NewHandler(NewService(fakeQuerier{total: 7, today: 1, hospitals: 2}))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetStatistics(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var snap Snapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if snap.TotalBirths != 7 || snap.TodayBirths != 1 || snap.HospitalsCount != 2 {
		t.Errorf("unexpected body: %+v", snap)
	}
}

func TestHandler_GetStatistics_Error(t *testing.T) {
	h := NewHandler(NewService(fakeQuerier{err: errors.New("boom")}))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.GetStatistics(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %v", err)
	}
}
