package transport

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scxttalex/areabooker/internal/transport/middleware"
)

// Handlers bundles everything InitRoutes wires into the router.
type Handlers struct {
	Booking   *BookingHandler
	Area      *AreaHandler
	Addon     *AddonHandler
	User      *UserHandler
	Calendar  *CalendarHandler
	Analytics *AnalyticsHandler
}

func InitRoutes(h Handlers) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30))

	api := router.Group("/api/v1")
	{
		areas := api.Group("/areas")
		{
			areas.POST("", h.Area.CreateArea)
			areas.GET("", h.Area.GetAllAreas)
			areas.GET("/:id", h.Area.GetArea)
			areas.PATCH("/:id", h.Area.UpdateArea)
			areas.DELETE("/:id", h.Area.DeleteArea)
			areas.GET("/:id/slots", h.Area.GetAreaSlots)
			areas.GET("/:id/availability", h.Area.CheckAvailability)
		}

		addons := api.Group("/addons")
		{
			addons.POST("", h.Addon.CreateAddon)
			addons.GET("", h.Addon.GetAllAddons)
			addons.GET("/:id", h.Addon.GetAddon)
			addons.PATCH("/:id", h.Addon.UpdateAddon)
			addons.DELETE("/:id", h.Addon.DeleteAddon)
		}

		users := api.Group("/users")
		{
			users.POST("/register", h.User.RegisterUser)
			users.GET("", h.User.GetAllUsers)
			users.GET("/:id", h.User.GetUser)
			users.DELETE("/:id", h.User.DeleteUser)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", h.Booking.CreateBooking)
			bookings.GET("", h.Booking.GetAllBookings)
			bookings.POST("/quote", h.Booking.QuoteBooking)
			bookings.GET("/users/:user_id", h.Booking.GetUserBookings)
			bookings.GET("/:id", h.Booking.GetBooking)
			bookings.PATCH("/:id", h.Booking.UpdateBooking)
			bookings.PATCH("/:id/paid", h.Booking.SetBookingPaid)
			bookings.DELETE("/:id", h.Booking.DeleteBooking)
		}

		api.GET("/calendar", h.Calendar.GetCalendar)

		analytics := api.Group("/analytics")
		{
			analytics.GET("/dashboard", h.Analytics.GetDashboard)
			analytics.GET("/areas/:id/bookings", h.Analytics.GetDrilldown)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return router
}
