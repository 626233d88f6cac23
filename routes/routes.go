package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"homely/handlers"
	"homely/utils"
)

// RegisterScheduleRoutes sets up the customer-facing scheduling endpoints.
func RegisterScheduleRoutes(r *gin.Engine, sh *handlers.SchedulingHandler) {
	api := r.Group("/api/schedule")
	{
		api.POST("/session", sh.StartSession)
		api.GET("/session/:sessionID/slots", sh.GetSlots)
		api.GET("/session/:sessionID/next-day", sh.GetNextDay)
		api.PUT("/session/:sessionID/slot", sh.SelectSlot)
		api.POST("/session/:sessionID/confirm", sh.ConfirmBooking)
		api.DELETE("/session/:sessionID", sh.CancelSession)
	}
}

// RegisterAvailabilityRoutes sets up the public availability badge endpoint.
func RegisterAvailabilityRoutes(r *gin.Engine, sh *handlers.SchedulingHandler) {
	api := r.Group("/api/availability")
	{
		api.GET("/category/:categoryID/next-day", sh.NextAvailableForCategory)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations: rescheduling
// bookings and managing the scheduling configuration.
func RegisterAdminRoutes(r *gin.Engine, sh *handlers.SchedulingHandler, ch *handlers.ConfigHandler) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.PUT("/bookings/:bookingID/reschedule", sh.RescheduleBooking)
		adminGroup.DELETE("/bookings/:bookingID", sh.CancelBooking)
		adminGroup.GET("/scheduling-config", ch.GetConfig)
		adminGroup.PUT("/scheduling-config", ch.UpsertConfig)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, sh *handlers.SchedulingHandler, ch *handlers.ConfigHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterScheduleRoutes(r, sh)
	RegisterAvailabilityRoutes(r, sh)
	RegisterAdminRoutes(r, sh, ch)
	RegisterHealthRoute(r)
}
