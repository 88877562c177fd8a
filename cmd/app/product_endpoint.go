package main

import (
	"strconv"

	"StorefrontAPI/internal/middleware"
	"StorefrontAPI/internal/model"
	"StorefrontAPI/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type productRequest struct {
	Name         string  `json:"name"`
	Price        string  `json:"price"`
	OldPrice     *string `json:"old_price"`
	Discount     string  `json:"discount"`
	Description1 string  `json:"description_1"`
	Description2 *string `json:"description_2"`
	Description3 *string `json:"description_3"`
	Image        string  `json:"image_1"`
	IsActive     *bool   `json:"is_active"`
	CategoryIDs  []int64 `json:"categories"`
	OptionIDs    []int64 `json:"options"`
}

type rateRequest struct {
	Name   string  `json:"name"`
	Email  *string `json:"email"`
	Rating int     `json:"rating"`
	Review *string `json:"review"`
}

func (r *productRequest) toModel() (*model.Product, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return nil, err
	}
	p := &model.Product{
		Name:         r.Name,
		Price:        price,
		Description1: r.Description1,
		Description2: r.Description2,
		Description3: r.Description3,
		Image:        r.Image,
		IsActive:     true,
		CategoryIDs:  r.CategoryIDs,
		OptionIDs:    r.OptionIDs,
	}
	if r.OldPrice != nil {
		op, err := decimal.NewFromString(*r.OldPrice)
		if err != nil {
			return nil, err
		}
		p.OldPrice = &op
	}
	if r.Discount != "" {
		d, err := decimal.NewFromString(r.Discount)
		if err != nil {
			return nil, err
		}
		p.Discount = d
	}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
	return p, nil
}

func parseShopFilter(c echo.Context) model.ProductFilter {
	var f model.ProductFilter
	if v := c.QueryParam("category"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.CategoryID = &id
		}
	}
	if v := c.QueryParam("option"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.OptionID = &id
		}
	}
	if v := c.QueryParam("price_min"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			f.PriceMin = &d
		}
	}
	if v := c.QueryParam("price_max"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			f.PriceMax = &d
		}
	}
	f.Name = c.QueryParam("name")
	f.Limit, _ = strconv.Atoi(c.QueryParam("page_size"))
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page > 1 {
		if f.Limit <= 0 {
			f.Limit = 12
		}
		f.Offset = (page - 1) * f.Limit
	}
	return f
}

func registerProductRoutes(g *echo.Group, ps *services.ProductService) {

	// PUBLIC — shop listing with filters
	g.GET("/products", func(c echo.Context) error {
		list, err := ps.List(c.Request().Context(), parseShopFilter(c))
		if err != nil {
			return c.JSON(500, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, list)
	})

	// PUBLIC — home page selections
	g.GET("/home", func(c echo.Context) error {
		top, newest, err := ps.Home(c.Request().Context())
		if err != nil {
			return c.JSON(500, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, map[string]interface{}{
			"top_discount_products": top,
			"new_products":          newest,
		})
	})

	// PUBLIC — product detail
	g.GET("/products/:id", func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(400, map[string]string{"error": "invalid id"})
		}
		p, err := ps.Get(c.Request().Context(), id)
		if err != nil {
			return c.JSON(404, map[string]string{"error": "product not found"})
		}
		return c.JSON(200, p)
	})

	// PUBLIC — ratings
	g.GET("/products/:id/ratings", func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(400, map[string]string{"error": "invalid id"})
		}
		list, err := ps.Ratings(c.Request().Context(), id)
		if err != nil {
			return c.JSON(500, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, list)
	})

	g.POST("/products/:id/ratings", func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(400, map[string]string{"error": "invalid id"})
		}
		req := new(rateRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(400, map[string]string{"error": "invalid request"})
		}
		rt := &model.Rating{
			ProductID: id,
			Name:      req.Name,
			Email:     req.Email,
			Rating:    req.Rating,
			Review:    req.Review,
		}
		ratingID, err := ps.Rate(c.Request().Context(), rt)
		if err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(201, map[string]interface{}{"id": ratingID})
	})

	// PUBLIC — categories and options for the filter sidebar
	g.GET("/categories", func(c echo.Context) error {
		list, err := ps.ListCategories(c.Request().Context())
		if err != nil {
			return c.JSON(500, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, list)
	})

	g.GET("/options", func(c echo.Context) error {
		list, err := ps.ListOptions(c.Request().Context())
		if err != nil {
			return c.JSON(500, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, list)
	})

	// PROTECTED — admin only write operations
	admin := g.Group("/products")
	admin.Use(middleware.JWTMiddleware())
	admin.Use(middleware.AdminOnly)

	admin.POST("", func(c echo.Context) error {
		req := new(productRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(400, map[string]string{"error": "invalid request"})
		}
		p, err := req.toModel()
		if err != nil {
			return c.JSON(400, map[string]string{"error": "invalid price"})
		}
		id, err := ps.Create(c.Request().Context(), p)
		if err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(201, map[string]interface{}{"id": id})
	})

	admin.PUT("/:id", func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(400, map[string]string{"error": "invalid id"})
		}
		req := new(productRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(400, map[string]string{"error": "invalid request"})
		}
		p, err := req.toModel()
		if err != nil {
			return c.JSON(400, map[string]string{"error": "invalid price"})
		}
		p.ProductID = id
		if err := ps.Update(c.Request().Context(), p); err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, map[string]string{"message": "updated"})
	})

	admin.DELETE("/:id", func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(400, map[string]string{"error": "invalid id"})
		}
		if err := ps.Delete(c.Request().Context(), id); err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, map[string]string{"message": "deleted"})
	})

	adminTaxonomy := g.Group("")
	adminTaxonomy.Use(middleware.JWTMiddleware())
	adminTaxonomy.Use(middleware.AdminOnly)

	adminTaxonomy.POST("/categories", func(c echo.Context) error {
		var req struct {
			Name  string `json:"name"`
			Image string `json:"image"`
		}
		if err := c.Bind(&req); err != nil {
			return c.JSON(400, map[string]string{"error": "invalid request"})
		}
		id, err := ps.CreateCategory(c.Request().Context(), req.Name, req.Image)
		if err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(201, map[string]interface{}{"id": id})
	})

	adminTaxonomy.POST("/options", func(c echo.Context) error {
		var req struct {
			Name string `json:"name"`
		}
		if err := c.Bind(&req); err != nil {
			return c.JSON(400, map[string]string{"error": "invalid request"})
		}
		id, err := ps.CreateOption(c.Request().Context(), req.Name)
		if err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(201, map[string]interface{}{"id": id})
	})
}
