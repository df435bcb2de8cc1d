package controllerImp

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"cropcare/entities"
	"cropcare/pkg/record/serviceImp"
)

type recordService interface {
	Fetch(ctx context.Context, cropID string) ([]entities.InspectionRecord, error)
	Ingest(ctx context.Context, rs []entities.InspectionRecord) (int, error)
}

type RecordCtrl struct{ s recordService }

func New(s recordService) *RecordCtrl { return &RecordCtrl{s: s} }

// List serves GET /fetch/crop-data[?crop=<id>].
func (h *RecordCtrl) List(c echo.Context) error {
	out, err := h.s.Fetch(c.Request().Context(), c.QueryParam("crop"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if out == nil {
		out = []entities.InspectionRecord{}
	}
	return c.JSON(http.StatusOK, out)
}

// Ingest accepts a JSON array of inspection records.
func (h *RecordCtrl) Ingest(c echo.Context) error {
	var in []entities.InspectionRecord
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	n, err := h.s.Ingest(c.Request().Context(), in)
	if err != nil {
		if errors.Is(err, serviceImp.ErrInvalidRecord) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"stored": n})
}
