package routes

import (
	"net/http"
	"time"

	"hoteladmin/handlers"
	"hoteladmin/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Options carries the router settings that come from configuration.
type Options struct {
	LoginAttemptsPerMin int
	AllowedOrigins      []string
}

// RegisterAuthRoutes registers the sign-in and password reset pages.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle, opts Options) {
	anon := r.Group("")
	anon.Use(middleware.RedirectIfAuthenticated("/"))
	{
		anon.GET("/login", hb.LoginPage)
		anon.GET("/reset-password", hb.ResetPasswordPage)

		limited := anon.Group("")
		limited.Use(middleware.LoginRateLimitMiddleware(opts.LoginAttemptsPerMin))
		limited.POST("/login", hb.Login)
		limited.POST("/reset-password", hb.ResetPassword)
	}
	r.POST("/logout", hb.Logout)
}

// RegisterPageRoutes registers the dashboard pages. Every page needs a session.
func RegisterPageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	pages := r.Group("")
	pages.Use(middleware.RequireSession())
	{
		pages.GET("/", hb.Home)

		pages.GET("/rooms", hb.RoomsPage)
		pages.POST("/rooms", hb.CreateRoom)
		pages.POST("/rooms/:id", hb.UpdateRoom)
		pages.POST("/rooms/:id/delete", hb.DeleteRoom)

		pages.GET("/users", hb.UsersPage)
		pages.GET("/users/:id/edit", hb.EditUserPage)
		pages.POST("/users/:id", hb.UpdateUser)
		pages.POST("/users/:id/delete", hb.DeleteUser)

		pages.GET("/booked", hb.BookedPage)
		pages.POST("/booked/:id/check-in", hb.ChangeCheckIn)
		pages.POST("/booked/:id/check-out", hb.ChangeCheckOut)
		pages.POST("/booked/:id/status", hb.SetBookingStatus)
		pages.POST("/booked/:id/delete", hb.DeleteBooking)
	}
}

// RegisterAPIRoutes registers the JSON booking endpoints.
func RegisterAPIRoutes(r *gin.Engine, hb *handlers.HandlerBundle, opts Options) {
	api := r.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowOrigins:     opts.AllowedOrigins,
		AllowMethods:     []string{"GET", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	api.Use(middleware.RequireSessionAPI())
	{
		api.GET("/bookings", hb.ListBookingsAPI)
		api.GET("/bookings/:id", hb.GetBookingAPI)
		api.PATCH("/bookings/:id", hb.PatchBookingAPI)
		api.DELETE("/bookings/:id", hb.DeleteBookingAPI)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// The session middleware must already be installed on r.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, opts Options) {
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"http://localhost:8080"}
	}

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb, opts)
	RegisterPageRoutes(r, hb)
	RegisterAPIRoutes(r, hb, opts)

	r.NoRoute(func(c *gin.Context) {
		if _, ok := middleware.CurrentPrincipal(c); ok {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		c.Redirect(http.StatusSeeOther, "/login")
	})
}
