package main

import (
	"net/http"
	"strconv"

	"StorefrontAPI/internal/middleware"
	"StorefrontAPI/internal/model"
	"StorefrontAPI/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type discountRequest struct {
	Name    string `json:"name"`
	Amount  string `json:"amount"`
	Percent string `json:"percent"`
	Active  bool   `json:"active"`
}

type taxRequest struct {
	Name   string `json:"name"`
	Rate   string `json:"rate"`
	Active bool   `json:"active"`
}

type shippingFeeRequest struct {
	Region        string `json:"region"`
	Cost          string `json:"cost"`
	EstimatedDays int    `json:"estimated_days"`
	Active        bool   `json:"active"`
}

type serviceFeeRequest struct {
	Name   string `json:"name"`
	Cost   string `json:"cost"`
	Active bool   `json:"active"`
}

func parseDec(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func registerPricingRoutes(g *echo.Group, pas *services.PricingAdminService) {
	admin := g.Group("/admin/pricing")
	admin.Use(middleware.JWTMiddleware())
	admin.Use(middleware.AdminOnly)

	// ===== discounts =====
	admin.GET("/discounts", func(c echo.Context) error {
		list, err := pas.Repo.ListDiscounts(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})
	admin.POST("/discounts", func(c echo.Context) error {
		req := new(discountRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		d := &model.Discount{Name: req.Name, Amount: parseDec(req.Amount), Percent: parseDec(req.Percent), Active: req.Active}
		id, err := pas.CreateDiscount(c.Request().Context(), d)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{"id": id})
	})
	admin.PUT("/discounts/:id", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		req := new(discountRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		d := &model.Discount{DiscountID: id, Name: req.Name, Amount: parseDec(req.Amount), Percent: parseDec(req.Percent), Active: req.Active}
		if err := pas.Repo.UpdateDiscount(c.Request().Context(), d); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})
	admin.DELETE("/discounts/:id", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		if err := pas.Repo.DeleteDiscount(c.Request().Context(), id); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	})

	// ===== taxes =====
	admin.GET("/taxes", func(c echo.Context) error {
		list, err := pas.Repo.ListTaxes(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})
	admin.POST("/taxes", func(c echo.Context) error {
		req := new(taxRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		t := &model.Tax{Name: req.Name, Rate: parseDec(req.Rate), Active: req.Active}
		id, err := pas.CreateTax(c.Request().Context(), t)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{"id": id})
	})
	admin.PUT("/taxes/:id", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		req := new(taxRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		t := &model.Tax{TaxID: id, Name: req.Name, Rate: parseDec(req.Rate), Active: req.Active}
		if err := pas.Repo.UpdateTax(c.Request().Context(), t); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})
	admin.DELETE("/taxes/:id", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		if err := pas.Repo.DeleteTax(c.Request().Context(), id); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	})

	// ===== shipping fees =====
	admin.GET("/shipping-fees", func(c echo.Context) error {
		list, err := pas.Repo.ListShippingFees(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})
	admin.POST("/shipping-fees", func(c echo.Context) error {
		req := new(shippingFeeRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		f := &model.ShippingFee{Region: req.Region, Cost: parseDec(req.Cost), EstimatedDays: req.EstimatedDays, Active: req.Active}
		id, err := pas.CreateShippingFee(c.Request().Context(), f)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{"id": id})
	})
	admin.PUT("/shipping-fees/:id", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		req := new(shippingFeeRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		f := &model.ShippingFee{ShippingFeeID: id, Region: req.Region, Cost: parseDec(req.Cost), EstimatedDays: req.EstimatedDays, Active: req.Active}
		if err := pas.Repo.UpdateShippingFee(c.Request().Context(), f); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})
	admin.DELETE("/shipping-fees/:id", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		if err := pas.Repo.DeleteShippingFee(c.Request().Context(), id); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	})

	// ===== service fees =====
	admin.GET("/service-fees", func(c echo.Context) error {
		list, err := pas.Repo.ListServiceFees(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})
	admin.POST("/service-fees", func(c echo.Context) error {
		req := new(serviceFeeRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		f := &model.ServiceFee{Name: req.Name, Cost: parseDec(req.Cost), Active: req.Active}
		id, err := pas.CreateServiceFee(c.Request().Context(), f)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{"id": id})
	})
	admin.PUT("/service-fees/:id", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		req := new(serviceFeeRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		f := &model.ServiceFee{ServiceFeeID: id, Name: req.Name, Cost: parseDec(req.Cost), Active: req.Active}
		if err := pas.Repo.UpdateServiceFee(c.Request().Context(), f); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})
	admin.DELETE("/service-fees/:id", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		if err := pas.Repo.DeleteServiceFee(c.Request().Context(), id); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	})
}
