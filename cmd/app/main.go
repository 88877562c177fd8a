package main

import (
	"log"
	"os"

	"StorefrontAPI/internal/db"
	"StorefrontAPI/internal/repository"
	"StorefrontAPI/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	// ======================
	// REPOSITORIES
	// ======================
	authRepo := repository.NewAuthRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	pricingRepo := repository.NewPricingRepository(pool)
	couponRepo := repository.NewCouponRepository(pool)
	orderRepo := repository.NewOrderRepository(pool, cartRepo)
	wishlistRepo := repository.NewWishlistRepository(pool)
	storefrontRepo := repository.NewStorefrontRepository(pool)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(authRepo)
	productSvc := services.NewProductService(productRepo)
	pricingSvc := services.NewPricingService(pricingRepo)
	pricingAdminSvc := services.NewPricingAdminService(pricingRepo)
	cartSvc := services.NewCartService(cartRepo, productRepo, pricingSvc)
	couponSvc := services.NewCouponService(couponRepo, couponRepo)
	orderSvc := services.NewOrderService(orderRepo, cartRepo, authRepo, pricingSvc, couponSvc)
	wishlistSvc := services.NewWishlistService(wishlistRepo, productRepo)
	storefrontSvc := services.NewStorefrontService(storefrontRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/store")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc)
	registerProductRoutes(api, productSvc)
	registerCartRoutes(api, cartSvc)
	registerWishlistRoutes(api, wishlistSvc)
	registerCouponRoutes(api, couponSvc)
	registerPricingRoutes(api, pricingAdminSvc)
	registerOrderRoutes(api, orderSvc)
	registerStorefrontRoutes(api, storefrontSvc)

	// ======================
	// SERVER
	// ======================
	// Debug route listing
	for _, r := range e.Routes() {
		println(r.Method, r.Path)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
