package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	recordCtrl interface {
		List(echo.Context) error
		Ingest(echo.Context) error
	},
	cropCtrl interface {
		Crops(echo.Context) error
		Calendar(echo.Context) error
		Record(echo.Context) error
		Conditions(echo.Context) error
		HealthSeries(echo.Context) error
		PestTotals(echo.Context) error
	},
	schedCtrl interface {
		Apply(echo.Context) error
		List(echo.Context) error
		At(echo.Context) error
		Clear(echo.Context) error
	},
	exportCtrl interface{ Workbook(echo.Context) error },
	guideCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	// record source
	e.GET("/fetch/crop-data", recordCtrl.List)
	e.POST("/fetch/crop-data", recordCtrl.Ingest)

	e.GET("/crops", cropCtrl.Crops)
	e.GET("/analysis/pests", cropCtrl.PestTotals)

	g := e.Group("/crops/:id")
	g.GET("/calendar", cropCtrl.Calendar)
	g.GET("/records/:timestamp", cropCtrl.Record)
	g.GET("/conditions", cropCtrl.Conditions)
	g.GET("/health-series", cropCtrl.HealthSeries)
	g.GET("/export.xlsx", exportCtrl.Workbook)

	g.POST("/schedule", schedCtrl.Apply)
	g.GET("/schedule", schedCtrl.List)
	g.GET("/schedule/:date", schedCtrl.At)
	g.DELETE("/schedule", schedCtrl.Clear)

	e.POST("/guides", guideCtrl.IngestText)
	e.POST("/guides/url", guideCtrl.IngestURL)
	e.GET("/guides", guideCtrl.Search)
	return e
}
