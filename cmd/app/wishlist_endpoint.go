package main

import (
	"net/http"

	"StorefrontAPI/internal/middleware"
	"StorefrontAPI/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type wishlistRequest struct {
	ProductID string `json:"product_id"`
}

func registerWishlistRoutes(g *echo.Group, ws *services.WishlistService) {
	p := g.Group("/wishlist")
	p.Use(middleware.JWTMiddleware())

	// LIST saved products
	p.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		items, err := ws.List(c.Request().Context(), claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, items)
	})

	// SAVE a product
	p.POST("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(wishlistRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		productID, err := uuid.Parse(req.ProductID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid product_id"})
		}
		added, err := ws.Add(c.Request().Context(), claims.UserID, productID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		if !added {
			// duplicate save is informational, not an error
			return c.JSON(http.StatusOK, map[string]string{"message": "already in wishlist"})
		}
		return c.JSON(http.StatusCreated, map[string]string{"message": "added to wishlist"})
	})

	// REMOVE a saved product
	p.DELETE("/:productid", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		productID, err := uuid.Parse(c.Param("productid"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		}
		if err := ws.Remove(c.Request().Context(), claims.UserID, productID); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "removed from wishlist"})
	})
}
