package controllerImp

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"cropcare/entities"
	"cropcare/pkg/calendar"
	"cropcare/pkg/crop/service"
	"cropcare/pkg/record"
)

type guideLookup interface {
	Related(ctx context.Context, name string, k int) ([]entities.GuideRef, error)
}

type CropCtrl struct {
	s      service.CropService
	guides guideLookup // optional
}

func New(s service.CropService, guides guideLookup) *CropCtrl {
	return &CropCtrl{s: s, guides: guides}
}

func (h *CropCtrl) Crops(c echo.Context) error {
	out, err := h.s.Crops(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Calendar(c echo.Context) error {
	size := 0
	if v := c.QueryParam("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "size must be a positive integer"})
		}
		size = n
	}
	cropID := c.Param("id")
	cells, err := h.s.Calendar(c.Request().Context(), cropID, size)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"crop_id": cropID, "cells": cells})
}

func (h *CropCtrl) Record(c echo.Context) error {
	cropID := c.Param("id")
	ts, err := url.PathUnescape(c.Param("timestamp"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid timestamp"})
	}
	r, err := h.s.Record(c.Request().Context(), cropID, ts)
	if errors.Is(err, calendar.ErrNoRecordForKey) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no record", "crop_id": cropID, "timestamp": ts})
	}
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

type conditionView struct {
	entities.ConditionOption
	Guides []entities.GuideRef `json:"guides,omitempty"`
}

func (h *CropCtrl) Conditions(c echo.Context) error {
	ctx := c.Request().Context()
	opts, err := h.s.Conditions(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	withGuides := c.QueryParam("guides") == "1" && h.guides != nil
	out := make([]conditionView, len(opts))
	for i, o := range opts {
		out[i] = conditionView{ConditionOption: o}
		if !withGuides {
			continue
		}
		refs, err := h.guides.Related(ctx, o.Name, 3)
		if err != nil {
			c.Logger().Warnf("guides for %q: %v", o.Name, err)
			continue
		}
		out[i].Guides = refs
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) HealthSeries(c echo.Context) error {
	s, err := h.s.HealthSeries(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *CropCtrl) PestTotals(c echo.Context) error {
	out, err := h.s.PestTotals(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func fail(c echo.Context, err error) error {
	if errors.Is(err, record.ErrFetchFailure) {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}
