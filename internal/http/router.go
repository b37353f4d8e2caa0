package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"
	"time"

	"vtc-booking/internal/config"
	h "vtc-booking/internal/http/handlers"
	"vtc-booking/internal/http/middleware"
	"vtc-booking/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter assembles the gin engine: middleware chain, rate limits and
// the full route table. Paths are part of the public contract.
func NewRouter(cfg config.Config, handler *h.Handler, auth services.AuthService, db *sql.DB, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"message": "Route non trouvée",
		})
	})

	// Booking form and confirmation page.
	r.Static("/public", "./public")
	r.StaticFile("/", "./public/index.html")

	api := r.Group("/api")
	api.Use(middleware.RateLimit(
		cfg.APIRateMax,
		time.Duration(cfg.APIRateWindowMin)*time.Minute,
		"Trop de requêtes depuis cette IP, réessayez plus tard.",
	))
	{
		api.GET("/health", h.Health(db))

		bookings := api.Group("/bookings")
		bookings.POST("", middleware.RateLimit(
			cfg.BookingRateMax,
			time.Duration(cfg.BookingRateWindowMin)*time.Minute,
			"Trop de réservations depuis cette IP, réessayez dans une heure.",
		), handler.CreateBooking)
		bookings.GET("/availability/:date/:time", handler.CheckAvailability)
		bookings.GET("/:id", handler.GetBooking)

		admin := api.Group("/admin")
		admin.POST("/login", handler.Login)
		admin.POST("/create-admin", handler.CreateAdmin)

		guarded := admin.Group("")
		guarded.Use(middleware.RequireAdmin(auth))
		guarded.GET("/bookings", handler.ListBookings)
		guarded.PUT("/bookings/:id", handler.UpdateBookingStatus)
		guarded.GET("/bookings/:id/voucher", handler.BookingVoucher)
		guarded.POST("/bookings/:id/resend-email", handler.ResendBookingEmails)
		guarded.GET("/stats", handler.Stats)
	}

	return r
}
