package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"cropcare/config"
	"cropcare/database"
	"cropcare/pkg/record"
	"cropcare/router"

	// Records
	recordClient "cropcare/pkg/record/client"
	recordCtrlImp "cropcare/pkg/record/controllerImp"
	recordRepoImp "cropcare/pkg/record/repositoryImp"
	recordSvc "cropcare/pkg/record/serviceImp"

	// Crops
	cropCtrlImp "cropcare/pkg/crop/controllerImp"
	cropSvc "cropcare/pkg/crop/serviceImp"

	// Schedule
	schedCtrlImp "cropcare/pkg/schedule/controllerImp"
	schedRepoImp "cropcare/pkg/schedule/repositoryImp"
	schedSvc "cropcare/pkg/schedule/serviceImp"

	// Guides
	guideCtrlImp "cropcare/pkg/guide/controllerImp"
	guideRepoImp "cropcare/pkg/guide/repositoryImp"
	guideSvc "cropcare/pkg/guide/serviceImp"

	exportCtrlImp "cropcare/pkg/export/controllerImp"
	healthCtrlImp "cropcare/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v echoMiddleware.RequestLoggerValues) error {
			if v.Error != nil {
				log.Printf("[http] %s %s %d %s err=%v", v.Method, v.URI, v.Status, v.Latency, v.Error)
				return nil
			}
			log.Printf("[http] %s %s %d %s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))

	// 4) Record source: remote service when configured, local store otherwise
	rSvc := recordSvc.New(recordRepoImp.New(db))
	var src record.Source = rSvc
	sourceName := "store"
	if cfg.RecordSourceURL != "" {
		src = recordClient.New(cfg.RecordSourceURL, cfg.FetchTimeout)
		sourceName = cfg.RecordSourceURL
	}
	log.Printf("[records] source=%s", sourceName)

	// 5) Services
	cSvc := cropSvc.NewCropService(src, cfg.GridSize)
	gSvc := guideSvc.New(guideRepoImp.New(db), cfg.GuideAllowedDomains, cfg.GuideMaxBytes)
	sSvc := schedSvc.NewScheduleService(cSvc, schedRepoImp.New(db), cfg.Location())

	// 6) Controllers
	rCtrl := recordCtrlImp.New(rSvc)
	cCtrl := cropCtrlImp.New(cSvc, gSvc)
	scCtrl := schedCtrlImp.New(sSvc)
	xCtrl := exportCtrlImp.New(cSvc, sSvc)
	gCtrl := guideCtrlImp.New(gSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db, rSvc, sourceName)

	// 7) Router
	r := router.New(e, rCtrl, cCtrl, scCtrl, xCtrl, gCtrl, hCtrl)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
