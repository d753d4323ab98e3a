package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parlorspace/config"
	"parlorspace/database"
	bookingRepoPkg "parlorspace/database/repository/booking"
	catalogRepoPkg "parlorspace/database/repository/catalog"
	paymentRepoPkg "parlorspace/database/repository/payment"
	userRepoPkg "parlorspace/database/repository/user"
	"parlorspace/handlers"
	"parlorspace/routes"
	"parlorspace/services/booking"
	"parlorspace/services/catalog"
	"parlorspace/services/identity"
	"parlorspace/services/payment"
	"parlorspace/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	utils.InitCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	db := mongoClient.Database(config.AppConfig.DatabaseName)
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	ledgerRepo := paymentRepoPkg.NewMongoLedgerRepo(db)

	// services.
	identityService := &identity.DefaultIdentityService{
		Repo:  userRepo,
		Cache: utils.GetCacheClient(),
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo: catalogRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo: bookingRepo,
	}
	paymentService := &payment.DefaultPaymentService{
		Provider: &payment.StripeCheckoutProvider{
			SuccessURL: config.AppConfig.CheckoutSuccessURL,
			CancelURL:  config.AppConfig.CheckoutCancelURL,
			Currency:   config.AppConfig.CheckoutCurrency,
		},
		Ledger: ledgerRepo,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		User:    handlers.NewUserHandler(identityService),
		Catalog: handlers.NewCatalogHandler(catalogService),
		Booking: handlers.NewBookingHandler(bookingService),
		Payment: handlers.NewPaymentHandler(paymentService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), mongoClient)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.Disconnect(mongoClient); err != nil {
		logger.Sugar().Warnf("main: failed to close MongoDB connection: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
