package assessment

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kangocare/kango/pkg/civildate"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/rubric/items", h.ListItems)
	api.GET("/admissions/:id/assessments", h.Monthly)
	api.GET("/admissions/:id/assessments/:date", h.Get)
	api.PUT("/admissions/:id/assessments/:date", h.Save)
	api.DELETE("/admissions/:id/assessments/:date", h.Delete)
	api.GET("/admissions/:id/assessments/:date/copy-previous", h.CopyPrevious)
	api.GET("/admissions/:id/sheet", h.MonthlySheet)
	api.GET("/admissions/:id/sheet/export", h.ExportSheet)
}

// ListItems returns the item definition table for form rendering, in display
// order.
func (h *Handler) ListItems(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Catalog().Items())
}

func (h *Handler) params(c echo.Context) (uuid.UUID, civildate.Date, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, civildate.Date{}, echo.NewHTTPError(http.StatusBadRequest, "invalid admission id")
	}
	date, err := civildate.Parse(c.Param("date"))
	if err != nil {
		return uuid.Nil, civildate.Date{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return id, date, nil
}

func (h *Handler) Get(c echo.Context) error {
	id, date, err := h.params(c)
	if err != nil {
		return err
	}
	a, err := h.svc.Get(c.Request().Context(), id, date)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, a)
}

// Save upserts one day's record. With unset items the save fails with 409 and
// the list of unset labels; repeating the request with ?force=true saves
// anyway.
func (h *Handler) Save(c echo.Context) error {
	id, date, err := h.params(c)
	if err != nil {
		return err
	}
	var a DailyAssessment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a.AdmissionID = id
	a.Date = date
	force := c.QueryParam("force") == "true"

	if err := h.svc.Save(c.Request().Context(), &a, force); err != nil {
		var incomplete *IncompleteError
		if errors.As(err, &incomplete) {
			return echo.NewHTTPError(http.StatusConflict, map[string]interface{}{
				"message": "assessment has unset items; repeat with force=true to save anyway",
				"missing": incomplete.Missing,
			})
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Delete(c echo.Context) error {
	id, date, err := h.params(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id, date); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CopyPrevious(c echo.Context) error {
	id, date, err := h.params(c)
	if err != nil {
		return err
	}
	draft, err := h.svc.CopyPrevious(c.Request().Context(), id, date)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, draft)
}

func (h *Handler) Monthly(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid admission id")
	}
	month := c.QueryParam("month")
	records, err := h.svc.Monthly(c.Request().Context(), id, month)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, records)
}

func (h *Handler) MonthlySheet(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid admission id")
	}
	sheet, err := h.svc.MonthlySheet(c.Request().Context(), id, c.QueryParam("month"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, sheet)
}

func (h *Handler) ExportSheet(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid admission id")
	}
	month := c.QueryParam("month")
	sheet, err := h.svc.MonthlySheet(c.Request().Context(), id, month)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	data, err := ExportMonthlySheet(month, sheet)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="assessment-%s.xlsx"`, month))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
