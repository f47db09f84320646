package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/closetshare/backend/docs"
	"github.com/closetshare/backend/internal/config"
	"github.com/closetshare/backend/internal/database"
	"github.com/closetshare/backend/internal/handlers"
	mW "github.com/closetshare/backend/internal/middleware"
	"github.com/closetshare/backend/internal/services"
	"github.com/closetshare/backend/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Closetshare API
// @version 1.0
// @description Peer-to-peer clothing rental marketplace paid in credits
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	config.Load()
	rentalConfig := config.LoadRentalConfig()

	port := viper.GetString("server.port")
	docs.SwaggerInfo.Host = "localhost:" + port

	db := database.InitDatabase()
	defer db.Close()

	redisClient := database.InitRedis()
	if redisClient != nil {
		defer redisClient.Close()
	}

	st := store.New(db)

	var events services.EventPublisher
	if redisClient != nil {
		events = services.NewRedisEventQueue(redisClient, rentalConfig.EventQueue)
	}

	authService := services.NewAuthService(st, redisClient, rentalConfig.StartingCredits)
	rentalService := services.NewRentalService(st, rentalConfig, events)
	itemHandler := handlers.NewItemHandler(
		services.NewItemService(st),
		services.NewSearchService(st),
		services.NewFavouriteService(st),
	)
	rentalHandler := handlers.NewRentalHandler(rentalService)
	qrHandler := handlers.NewQRHandler(services.NewBookingPassService(st))

	// Initialize auth middleware with Redis
	mW.InitAuthMiddleware(redisClient)

	r := chi.NewRouter()

	r.Use(mW.SecurityHeaders)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		services.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Handle("/static/items/*", http.StripPrefix("/static/items/",
		mW.StaticFileServer(viper.GetString("static.items_dir"))))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", authService.Register)
		r.Post("/auth/login", authService.Login)
		r.Post("/auth/logout", authService.Logout)

		r.Get("/items", itemHandler.ListItems)
		r.Get("/items/search", itemHandler.Search)
		r.Get("/items/{itemId}", itemHandler.GetItem)
		r.Get("/items/{itemId}/availability", rentalHandler.Availability)
		r.Get("/items/{itemId}/quote", rentalHandler.Quote)
		r.Get("/items/{itemId}/bookings", rentalHandler.Calendar)

		r.Group(func(r chi.Router) {
			r.Use(mW.AuthMiddleware)

			r.Get("/account", authService.GetUserAccount)
			r.Get("/account/ledger", rentalHandler.Ledger)

			r.Post("/items", itemHandler.CreateItem)
			r.Post("/items/{itemId}/favourite", itemHandler.AddFavourite)
			r.Delete("/items/{itemId}/favourite", itemHandler.RemoveFavourite)
			r.Get("/favourites", itemHandler.ListFavourites)

			r.Post("/rentals", rentalHandler.CreateRental)
			r.Get("/rentals", rentalHandler.ListRentals)
			r.Post("/rentals/verify", qrHandler.VerifyPass)
			r.Get("/rentals/{reference}/pass", qrHandler.GeneratePass)
		})
	})

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server stopped")
}
