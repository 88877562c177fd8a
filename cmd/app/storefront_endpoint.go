package main

import (
	"net/http"
	"strconv"

	"StorefrontAPI/internal/middleware"
	"StorefrontAPI/internal/model"
	"StorefrontAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerStorefrontRoutes(g *echo.Group, ss *services.StorefrontService) {
	// public contact and chrome
	g.POST("/inquiries", func(c echo.Context) error {
		q := new(model.SupplierInquiry)
		if err := c.Bind(q); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		id, err := ss.SubmitInquiry(c.Request().Context(), q)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{"id": id, "message": "inquiry received"})
	})

	g.GET("/settings", func(c echo.Context) error {
		st, err := ss.Settings(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		if st == nil {
			return c.JSON(http.StatusOK, map[string]string{})
		}
		return c.JSON(http.StatusOK, st)
	})

	g.GET("/hero-images", func(c echo.Context) error {
		imgs, err := ss.HeroImages(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, imgs)
	})

	// admin management
	a := g.Group("/admin")
	a.Use(middleware.JWTMiddleware())
	a.Use(middleware.AdminOnly)

	a.GET("/inquiries", func(c echo.Context) error {
		list, err := ss.ListInquiries(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	a.PUT("/settings", func(c echo.Context) error {
		st := new(model.StoreSettings)
		if err := c.Bind(st); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := ss.SaveSettings(c.Request().Context(), st); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, st)
	})

	a.POST("/hero-images", func(c echo.Context) error {
		h := new(model.HeroImage)
		if err := c.Bind(h); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		id, err := ss.AddHeroImage(c.Request().Context(), h)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		h.HeroImageID = id
		return c.JSON(http.StatusCreated, h)
	})

	a.DELETE("/hero-images/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		if err := ss.RemoveHeroImage(c.Request().Context(), id); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	})
}
