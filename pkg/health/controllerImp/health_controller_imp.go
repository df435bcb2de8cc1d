package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type recordCounter interface {
	Count(ctx context.Context) (int64, error)
}

type HealthCtrl struct {
	db      *gorm.DB
	records recordCounter
	source  string // "store" or the remote record source URL
}

func NewHealthCtrl(db *gorm.DB, records recordCounter, source string) *HealthCtrl {
	return &HealthCtrl{db: db, records: records, source: source}
}

type sub struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := h.pingDB(ctx)
	var records int64
	if db.OK && h.records != nil {
		n, err := h.records.Count(ctx)
		if err != nil {
			db = sub{Err: "count: " + err.Error()}
		}
		records = n
	}

	status := http.StatusOK
	if !db.OK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, echo.Map{
		"status":         echo.Map{"ok": db.OK},
		"uptime_sec":     int(time.Since(appStart).Seconds()),
		"record_source":  h.source,
		"stored_records": records,
		"checks":         echo.Map{"database": db},
		"time":           time.Now().Format(time.RFC3339),
	})
}

func (h *HealthCtrl) pingDB(ctx context.Context) sub {
	if h.db == nil {
		return sub{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return sub{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return sub{Err: "ping: " + err.Error()}
	}
	return sub{OK: true}
}
