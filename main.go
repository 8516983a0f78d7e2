package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookexpert/config"
	"bookexpert/cron"
	"bookexpert/database"
	bookingRepo "bookexpert/database/repository/booking"
	expertRepo "bookexpert/database/repository/expert"
	"bookexpert/handlers"
	"bookexpert/middleware"
	"bookexpert/routes"
	expertSvc "bookexpert/services/expert"
	"bookexpert/services/realtime"
	"bookexpert/services/reconciler"
	"bookexpert/services/reservation"
	"bookexpert/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitEvents()

	if config.AppConfig.SeedOnEmpty {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		seeded, err := database.SeedExpertsIfEmpty(ctx)
		cancel()
		if err != nil {
			logger.Sugar().Fatalf("main: failed to seed experts: %v", err)
		}
		if seeded > 0 {
			logger.Sugar().Infof("main: seeded %d sample experts", seeded)
		}
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	expRepo := expertRepo.NewMongoExpertRepo()
	bkRepo := bookingRepo.NewMongoBookingRepo()

	// real-time fan-out: local hub bridged over Redis pub/sub.
	hub := realtime.NewHub()
	bridge := realtime.NewRedisBridge(utils.GetEventsClient(), hub)
	bridgeCtx, stopBridge := context.WithCancel(context.Background())
	go bridge.Run(bridgeCtx)

	// services.
	reservationService := &reservation.DefaultReservationService{
		Experts:  expRepo,
		Bookings: bkRepo,
		Notifier: bridge,
	}
	expertService := &expertSvc.DefaultExpertService{
		Repo: expRepo,
	}
	reconcilerInstance := &reconciler.Reconciler{
		Experts:  expRepo,
		Bookings: bkRepo,
		Logger:   logger,
	}

	// async worker picking up scheduled reconciliation runs.
	cron.InitReconcileWorker(reconcilerInstance)

	expertHandler := handlers.NewExpertHandler(expertService)
	bookingHandler := handlers.NewBookingHandler(reservationService, logger)
	eventsHandler := handlers.NewEventsHandler(hub)
	adminHandler := handlers.NewAdminHandler(reconcilerInstance)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ListExpertsHandler:   expertHandler.ListExpertsHandler,
		GetExpertByIDHandler: expertHandler.GetExpertByIDHandler,

		BookSlotHandler:            bookingHandler.BookSlotHandler,
		ListBookingsHandler:        bookingHandler.ListBookingsHandler,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatusHandler,
		DeleteBookingHandler:       bookingHandler.DeleteBookingHandler,

		StreamHandler: eventsHandler.StreamHandler,

		ReconcileHandler: adminHandler.ReconcileHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	stopBridge()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
