package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"StorefrontAPI/internal/middleware"
	"StorefrontAPI/internal/model"
	"StorefrontAPI/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type applyCouponRequest struct {
	Code string `json:"code"`
}

type couponRequest struct {
	Code            string     `json:"code"`
	DiscountPercent string     `json:"discount_percent"`
	Active          bool       `json:"active"`
	UsageLimit      int        `json:"usage_limit"`
	ValidFrom       *time.Time `json:"valid_from"`
	ValidTo         *time.Time `json:"valid_to"`
}

func registerCouponRoutes(g *echo.Group, cs *services.CouponService) {

	// USER — check a code against the signed-in user
	apply := g.Group("/coupons")
	apply.Use(middleware.JWTMiddleware())
	apply.POST("/apply", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(applyCouponRequest)
		if err := c.Bind(req); err != nil || req.Code == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "code required"})
		}
		coupon, err := cs.Apply(c.Request().Context(), req.Code, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCouponNotFound):
				return c.JSON(http.StatusNotFound, map[string]string{"error": "coupon not found"})
			case errors.Is(err, services.ErrCouponExpired),
				errors.Is(err, services.ErrCouponExhausted),
				errors.Is(err, services.ErrCouponAlreadyUsed):
				return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"accepted":         true,
			"discount_percent": coupon.DiscountPercent,
		})
	})

	// ADMIN — coupon management
	admin := g.Group("/admin/coupons")
	admin.Use(middleware.JWTMiddleware())
	admin.Use(middleware.AdminOnly)

	admin.GET("", func(c echo.Context) error {
		list, err := cs.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	admin.POST("", func(c echo.Context) error {
		req := new(couponRequest)
		if err := c.Bind(req); err != nil || req.Code == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		percent, err := decimal.NewFromString(req.DiscountPercent)
		if err != nil || percent.IsNegative() {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid discount_percent"})
		}
		coupon := &model.Coupon{
			Code:            req.Code,
			DiscountPercent: percent,
			Active:          req.Active,
			UsageLimit:      req.UsageLimit,
			ValidFrom:       req.ValidFrom,
			ValidTo:         req.ValidTo,
		}
		id, err := cs.Create(c.Request().Context(), coupon)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{"id": id})
	})

	admin.PUT("/:id", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		req := new(couponRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		percent, err := decimal.NewFromString(req.DiscountPercent)
		if err != nil || percent.IsNegative() {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid discount_percent"})
		}
		coupon := &model.Coupon{
			CouponID:        id,
			Code:            req.Code,
			DiscountPercent: percent,
			Active:          req.Active,
			UsageLimit:      req.UsageLimit,
			ValidFrom:       req.ValidFrom,
			ValidTo:         req.ValidTo,
		}
		if err := cs.Update(c.Request().Context(), coupon); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})

	admin.DELETE("/:id", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		if err := cs.Delete(c.Request().Context(), id); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	})
}
