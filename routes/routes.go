package routes

import (
	"time"

	"boardroom/handlers"
	"boardroom/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterUserHandler)
		api.POST("/login", hb.User.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.User.GetCurrentUserHandler)
		api.DELETE("/revoke", hb.User.RevokeUserAuthTokenHandler)
	}
}

// RegisterRoomRoutes registers the boardroom catalog endpoints. Reads are
// open to any authenticated user; writes require admin.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
	{
		api.GET("", hb.Room.ListRooms)
		api.GET("/:id", hb.Room.GetRoom)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware(hb.UserRepo))
		admin.POST("", hb.Room.CreateRoom)
		admin.PUT("/:id", hb.Room.UpdateRoom)
		admin.DELETE("/:id", hb.Room.DeactivateRoom)
	}
}

// RegisterBookingRoutes sets up the booking lifecycle and availability endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookings := r.Group("/api/bookings")
	bookings.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
	{
		bookings.POST("", hb.Booking.CreateBooking)
		bookings.GET("", hb.Booking.ListMyBookings)
		bookings.GET("/:id", hb.Booking.GetBooking)
		bookings.PUT("/:id", hb.Booking.UpdateBooking)
		bookings.DELETE("/:id", hb.Booking.CancelBooking)
		bookings.POST("/:id/opt-out", hb.Booking.OptOut)
	}

	availability := r.Group("/api/availability")
	availability.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
	{
		availability.POST("/check", hb.Booking.CheckAvailability)
		availability.GET("/:roomId/:date", hb.Booking.GetDayAvailability)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
	adminGroup.Use(middleware.JWTAuthAdminMiddleware(hb.UserRepo))
	{
		adminGroup.GET("/users", hb.Admin.GetAllUsersHandler)
		adminGroup.POST("/backup", hb.Admin.RunBackupHandler)
	}
}

// RegisterHealthRoute registers the health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health.HealthCheck)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
