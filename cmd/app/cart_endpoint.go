package main

import (
	"errors"
	"net/http"
	"strconv"

	"StorefrontAPI/internal/middleware"
	"StorefrontAPI/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type addCartRequest struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"quantity"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Options   string `json:"options"`
}

type updateCartRequest struct {
	Qty   *int `json:"quantity"`
	Delta *int `json:"delta"`
}

func registerCartRoutes(g *echo.Group, cs *services.CartService) {
	p := g.Group("/cart")
	p.Use(middleware.JWTMiddleware())

	// GET cart (items + quote)
	p.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		cart, err := cs.Get(c.Request().Context(), claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cart)
	})

	// ADD line
	p.POST("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(addCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		productID, err := uuid.Parse(req.ProductID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid product_id"})
		}
		line, err := cs.AddLine(c.Request().Context(), claims.UserID, productID, req.Qty, req.Color, req.Size, req.Options)
		if errors.Is(err, services.ErrAlreadyInCart) {
			// duplicate add is informational, not an error
			return c.JSON(http.StatusOK, map[string]interface{}{"message": "already in cart", "line": line})
		}
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, line)
	})

	// UPDATE quantity (absolute or delta)
	p.PUT("/:lineid", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		lineID, _ := strconv.ParseInt(c.Param("lineid"), 10, 64)
		req := new(updateCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		var err error
		switch {
		case req.Delta != nil:
			err = cs.ChangeQuantity(c.Request().Context(), claims.UserID, lineID, *req.Delta)
		case req.Qty != nil:
			err = cs.SetQuantity(c.Request().Context(), claims.UserID, lineID, *req.Qty)
		default:
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "quantity or delta required"})
		}
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})

	// REMOVE line
	p.DELETE("/:lineid", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		lineID, _ := strconv.ParseInt(c.Param("lineid"), 10, 64)
		if err := cs.RemoveLine(c.Request().Context(), claims.UserID, lineID); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "removed"})
	})
}
