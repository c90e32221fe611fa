package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"rimss/internal/auth"
	"rimss/internal/cart"
	"rimss/internal/config"
	"rimss/internal/domain/user"
	"rimss/internal/offers"
	"rimss/internal/orders"
	"rimss/internal/payment"
	"rimss/internal/products"
	"rimss/internal/seed"
	"rimss/internal/session"
	"rimss/internal/tokens"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Backend collaborators: the in-memory mock data layer
	catalogData := seed.Products()
	catalog := products.NewRepo(catalogData, cfg.MockLatency())

	demo := seed.DemoUser()
	hash, err := auth.HashPassword(seed.DemoPassword)
	if err != nil {
		log.Fatal(err)
	}
	demo.PasswordHash = hash
	userRepo := auth.NewUserRepo([]user.User{demo})

	jwtMgr := auth.NewJWTManager(auth.JWTConfig{
		Issuer: cfg.JWTIssuer,
		Secret: cfg.JWTSecret,
		TTL:    cfg.TokenTTL(),
	})
	authSvc := auth.NewService(userRepo, jwtMgr, cfg.MockLatency())

	cartRepo := cart.NewRepo(catalog, seed.CartItems(catalogData), cfg.MockLatency())
	offerRepo := offers.NewRepo(seed.Offers(), cfg.MockLatency())
	orderRepo := orders.NewRepo(seed.Orders(demo, catalogData), cartRepo, cfg.MockLatency())
	payments := payment.NewService(cfg.MockLatency())

	// Stores: built once, passed by reference everywhere
	ctx := context.Background()
	sessionStore := session.NewStore(ctx, authSvc, tokens.NewFileStorage(cfg.TokenFile), logger)
	cartStore := cart.NewStore(ctx, cartRepo, logger)

	sessHandler := session.NewHandler(sessionStore)
	cartHandler := cart.NewHandler(cartStore, catalog)
	prodHandler := products.NewHandler(catalog)
	offerHandler := offers.NewHandler(offerRepo)
	orderHandler := orders.NewHandler(orders.Dependencies{
		Repo:     orderRepo,
		Payments: payments,
		Cart:     cartStore,
	})

	r := gin.Default()
	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", sessHandler.Register)
		authGroup.POST("/login", sessHandler.Login)
		authGroup.POST("/logout", sessHandler.Logout)
	}

	// Public catalog routes (no login required)
	api.GET("/products", prodHandler.List)
	api.GET("/products/:id", prodHandler.Get)
	api.GET("/categories", prodHandler.Categories)
	api.GET("/offers", offerHandler.List)

	protected := api.Group("/")
	protected.Use(session.RequireUser(sessionStore))
	{
		protected.GET("/me", sessHandler.Me)

		protected.GET("/cart", cartHandler.GetCart)
		protected.POST("/cart/items", cartHandler.AddItem)
		protected.PATCH("/cart/items", cartHandler.UpdateQuantity)
		protected.DELETE("/cart/items", cartHandler.RemoveItem)
		protected.DELETE("/cart", cartHandler.Clear)

		protected.GET("/orders", orderHandler.List)
		protected.POST("/checkout", orderHandler.Checkout)
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
