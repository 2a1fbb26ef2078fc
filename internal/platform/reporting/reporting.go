package reporting

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// rowQuerier is the slice of the pgx pool the reporting queries need.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Snapshot holds the registry-wide aggregate counts. Each field comes from
// its own query; the metrics are advisory, not a transactional snapshot.
type Snapshot struct {
	TotalBirths    int `json:"total_births"`
	TodayBirths    int `json:"today_births"`
	HospitalsCount int `json:"hospitals_count"`
}

// Service computes read-only aggregates over the births table.
type Service struct {
	db rowQuerier
}

func NewService(db rowQuerier) *Service {
	return &Service{db: db}
}

func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot

	if err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM births`).Scan(&snap.TotalBirths); err != nil {
		return nil, fmt.Errorf("count births: %w", err)
	}
	if err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM births WHERE created_at::date = CURRENT_DATE`).Scan(&snap.TodayBirths); err != nil {
		return nil, fmt.Errorf("count today's births: %w", err)
	}
	if err := s.db.QueryRow(ctx,
		`SELECT COUNT(DISTINCT hospital_name) FROM births`).Scan(&snap.HospitalsCount); err != nil {
		return nil, fmt.Errorf("count hospitals: %w", err)
	}

	return &snap, nil
}

// Handler provides the HTTP handler for the statistics API.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/births/statistics", h.GetStatistics)
}

func (h *Handler) GetStatistics(c echo.Context) error {
	snap, err := h.svc.Snapshot(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, snap)
}
