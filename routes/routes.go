package routes

import (
	"net/http"
	"time"

	"parlorspace/handlers"
	"parlorspace/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the route table is wired from.
type HandlerBundle struct {
	User    *handlers.UserHandler
	Catalog *handlers.CatalogHandler
	Booking *handlers.BookingHandler
	Payment *handlers.PaymentHandler
}

// RegisterUserRoutes registers identity endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	users := r.Group("/users")
	{
		users.POST("", hb.User.RegisterUserHandler)
		users.GET("", hb.User.ListUsersHandler)
		users.GET("/:email/role", hb.User.GetUserRoleHandler)
		users.PATCH("/:id", hb.User.UpdateUserRoleHandler)
		users.PATCH("/:id/status", hb.User.UpdateUserStatusHandler)
		users.DELETE("/:id", hb.User.DeleteUserHandler)
	}
}

// RegisterCatalogRoutes registers service-listing endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	services := r.Group("/services")
	{
		services.POST("", hb.Catalog.CreateServiceHandler)
		services.GET("", hb.Catalog.ListServicesHandler)
		services.GET("/:id", hb.Catalog.GetServiceHandler)
		services.PATCH("/:id", hb.Catalog.UpdateServiceHandler)
		services.DELETE("/:id", hb.Catalog.DeleteServiceHandler)
	}
}

// RegisterBookingRoutes registers booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", hb.Booking.CreateBookingHandler)
		bookings.GET("", hb.Booking.ListBookingsHandler)
		bookings.PATCH("/:id", hb.Booking.UpdateBookingHandler)
		bookings.PATCH("/:id/role", hb.Booking.AssignDecoratorHandler)
		bookings.PATCH("/:id/status", hb.Booking.UpdateBookingStatusHandler)
		bookings.DELETE("/:id", hb.Booking.DeleteBookingHandler)
	}
	r.GET("/decorators", hb.Booking.ListDecoratorBookingsHandler)
}

// RegisterPaymentRoutes registers checkout and settlement endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/payment-checkout-session", hb.Payment.CreateCheckoutSessionHandler)
	r.PATCH("/payment-success", hb.Payment.SettlePaymentHandler)
	r.GET("/payments", hb.Payment.ListPaymentsHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHealthRoute(r)
}
