package main

import (
	"errors"
	"net/http"
	"strconv"

	"StorefrontAPI/internal/middleware"
	"StorefrontAPI/internal/model"
	"StorefrontAPI/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type updateOrderStateRequest struct {
	State string `json:"state"`
}

func registerOrderRoutes(g *echo.Group, os *services.OrderService) {
	p := g.Group("/orders")
	p.Use(middleware.JWTMiddleware())

	// PLACE order from the open cart
	p.POST("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(services.PlaceOrderInput)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		resp, err := os.Place(c.Request().Context(), claims.UserID, *req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			case errors.Is(err, services.ErrEmptyCart):
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "cart is empty"})
			case errors.Is(err, services.ErrUserBanned):
				return c.JSON(http.StatusForbidden, map[string]string{"error": "user is banned"})
			case errors.Is(err, services.ErrCouponNotFound),
				errors.Is(err, services.ErrCouponExpired),
				errors.Is(err, services.ErrCouponExhausted),
				errors.Is(err, services.ErrCouponAlreadyUsed):
				return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, resp)
	})

	// MY orders
	p.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		list, err := os.ListByUser(c.Request().Context(), claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	// ORDER detail with line snapshot
	p.GET("/:id", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		orderID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		resp, err := os.Get(c.Request().Context(), orderID)
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "order not found"})
		}
		if claims.Role != "admin" && (resp.Order.UserID == nil || *resp.Order.UserID != claims.UserID) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "order not found"})
		}
		return c.JSON(http.StatusOK, resp)
	})

	// admin-only order management
	admin := g.Group("/admin/orders")
	admin.Use(middleware.JWTMiddleware())
	admin.Use(middleware.AdminOnly)

	admin.GET("", func(c echo.Context) error {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		offset, _ := strconv.Atoi(c.QueryParam("offset"))
		list, err := os.ListAll(c.Request().Context(), limit, offset)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	admin.PUT("/:id/state", func(c echo.Context) error {
		orderID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		req := new(updateOrderStateRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := os.SetState(c.Request().Context(), orderID, model.OrderState(req.State)); err != nil {
			if errors.Is(err, services.ErrInvalidState) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid order state"})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})
}
