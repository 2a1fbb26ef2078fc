package registration

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/brs/brs/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/births", h.CreateBirth)
	api.GET("/births/search/:id", h.SearchByIdentity)
	api.DELETE("/births/purge", h.PurgeExpired)
}

type createBirthResponse struct {
	Message string          `json:"message"`
	Success bool            `json:"success"`
	Data    createBirthData `json:"data"`
}

type createBirthData struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// birthView is the search result shape: birth_date as a plain calendar
// date, no surrogate id.
type birthView struct {
	FatherName   string       `json:"father_name"`
	MotherName   string       `json:"mother_name"`
	HospitalName string       `json:"hospital_name"`
	BirthDate    string       `json:"birth_date"`
	FatherIDType DocumentType `json:"father_id_type"`
	MotherIDType DocumentType `json:"mother_id_type"`
	CreatedAt    time.Time    `json:"created_at"`
}

func newBirthView(b *BirthRecord) birthView {
	return birthView{
		FatherName:   b.FatherName,
		MotherName:   b.MotherName,
		HospitalName: b.HospitalName,
		BirthDate:    b.BirthDate.Format("2006-01-02"),
		FatherIDType: b.FatherIDType,
		MotherIDType: b.MotherIDType,
		CreatedAt:    b.CreatedAt,
	}
}

func (h *Handler) CreateBirth(c echo.Context) error {
	var req RawBirthRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rec, err := h.svc.Register(c.Request().Context(), req)
	if err != nil {
		var verrs ValidationErrors
		switch {
		case errors.As(err, &verrs):
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"message": "registration rejected",
				"errors":  verrs,
			})
		case errors.Is(err, ErrDuplicate):
			return echo.NewHTTPError(http.StatusConflict, ErrDuplicate.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to save birth record")
		}
	}
	return c.JSON(http.StatusCreated, createBirthResponse{
		Message: "birth record saved",
		Success: true,
		Data:    createBirthData{ID: rec.ID, CreatedAt: rec.CreatedAt},
	})
}

func (h *Handler) SearchByIdentity(c echo.Context) error {
	id := c.Param("id")
	pg := pagination.FromContext(c)
	records, total, err := h.svc.Search(c.Request().Context(), id, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if total == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "no records found")
	}
	views := make([]birthView, 0, len(records))
	for _, b := range records {
		views = append(views, newBirthView(b))
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(views, total, pg.Limit, pg.Offset))
}

func (h *Handler) PurgeExpired(c echo.Context) error {
	deleted, err := h.svc.Purge(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "old records purged",
		"deleted": deleted,
	})
}
