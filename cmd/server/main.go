// cmd/server/main.go is the application entry point. It wires the stores,
// services and handlers together and starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"gameshelf/internal/account"
	"gameshelf/internal/catalog"
	"gameshelf/internal/collection"
	"gameshelf/internal/database"
	"gameshelf/internal/events"
	"gameshelf/internal/lending"
	"gameshelf/internal/review"
	"gameshelf/internal/telemetry"
)

func main() {
	ctx := context.Background()

	shutdownTracing, err := telemetry.Setup(ctx, "gameshelf")
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}

	db, err := database.Connect(ctx, database.ConfigFromEnv())
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	userStore := account.NewPostgresStore(db)
	gameStore := catalog.NewPostgresStore(db)
	copyStore := collection.NewPostgresStore(db)
	requestStore := lending.NewPostgresStore(db)
	eventStore := events.NewPostgresStore(db)
	registrationStore := events.NewPostgresRegistrationStore(db)
	reviewStore := review.NewPostgresStore(db)

	accountService := account.NewService(userStore, copyStore)
	catalogService := catalog.NewService(gameStore)
	collectionService := collection.NewService(copyStore, userStore, gameStore, requestStore)
	lendingService := lending.NewService(requestStore, userStore, copyStore)
	availability := lending.NewResolver(copyStore, requestStore)
	eventService := events.NewService(eventStore, registrationStore, userStore, gameStore, requestStore, availability)
	registrationService := events.NewRegistrationService(registrationStore, eventStore, userStore)
	reviewService := review.NewService(reviewStore, userStore, gameStore)

	accountHandler := account.NewHandler(accountService)
	catalogHandler := catalog.NewHandler(catalogService)
	collectionHandler := collection.NewHandler(collectionService)
	lendingHandler := lending.NewHandler(lendingService)
	eventHandler := events.NewHandler(eventService, registrationService)
	reviewHandler := review.NewHandler(reviewService)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/users", accountHandler.Routes)
	r.Route("/games", catalogHandler.Routes)
	r.Route("/copies", collectionHandler.Routes)
	r.Route("/borrowrequests", lendingHandler.Routes)
	r.Route("/events", eventHandler.Routes)
	r.Route("/registrations", eventHandler.RegistrationRoutes)
	r.Route("/reviews", reviewHandler.Routes)

	sweeperCtx, stopSweeper := context.WithCancel(ctx)
	sweeper := events.NewSweeper(eventService)
	go sweeper.Run(sweeperCtx)

	port := getEnv("PORT", "8080")
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server")
	stopSweeper()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("tracer shutdown: %v", err)
	}
	log.Println("server stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
