package controllerImp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"cropcare/pkg/calendar"
	"cropcare/pkg/export"
	"cropcare/pkg/record"
	"cropcare/pkg/schedule"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type gridSource interface {
	Calendar(ctx context.Context, cropID string, size int) ([]calendar.Cell, error)
}

type markSource interface {
	Calendar(ctx context.Context, cropID, from, to string) (schedule.Schedule, error)
}

type ExportCtrl struct {
	grid  gridSource
	marks markSource
}

func New(grid gridSource, marks markSource) *ExportCtrl { return &ExportCtrl{grid, marks} }

func (h *ExportCtrl) Workbook(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	cells, err := h.grid.Calendar(ctx, id, 0)
	if errors.Is(err, record.ErrFetchFailure) {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	marks, err := h.marks.Calendar(ctx, id, "", "")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	f, err := export.Workbook(id, cells, marks)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "crop-"+id+".xlsx"))
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
