package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"cropcare/pkg/condition"
	"cropcare/pkg/record"
	"cropcare/pkg/schedule"
	"cropcare/pkg/schedule/service"
)

type SchedCtrl struct{ s service.ScheduleService }

func New(s service.ScheduleService) *SchedCtrl { return &SchedCtrl{s} }

type applyReq struct {
	Condition string `json:"condition"`
	StartDate string `json:"start_date"`
}

func (h *SchedCtrl) Apply(c echo.Context) error {
	var body applyReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	body.Condition = strings.TrimSpace(body.Condition)
	if body.Condition == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "condition is required"})
	}
	res, err := h.s.Apply(c.Request().Context(), service.ApplyRequest{
		CropID:    c.Param("id"),
		Condition: body.Condition,
		StartDate: strings.TrimSpace(body.StartDate),
	})
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, res)
	case errors.Is(err, schedule.ErrMissingControlPlan):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	case errors.Is(err, condition.ErrUnknownCondition):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, schedule.ErrBadStartDate):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, record.ErrFetchFailure):
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

// List returns the crop's marked dates, optionally limited by from/to.
func (h *SchedCtrl) List(c echo.Context) error {
	s, err := h.s.Calendar(c.Request().Context(), c.Param("id"), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"crop_id": c.Param("id"), "dates": s.Dates(), "calendar": s})
}

// At backs the date detail popup.
func (h *SchedCtrl) At(c echo.Context) error {
	e, err := h.s.At(c.Request().Context(), c.Param("id"), c.Param("date"))
	if errors.Is(err, service.ErrNoMark) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, e)
}

func (h *SchedCtrl) Clear(c echo.Context) error {
	n, err := h.s.Clear(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": n})
}
