package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/petopia/petopia_backend/controllers"
)

// RegisterDashboardRoutes sets up the admin dashboard routes behind
// the authentication middleware.
func RegisterDashboardRoutes(e *echo.Echo, dc *controllers.DashboardController, auth echo.MiddlewareFunc) {
	dashboard := e.Group("/api/dashboard")
	dashboard.Use(auth)

	dashboard.GET("/user-registrations", dc.UserRegistrations)
	dashboard.GET("/pet-types", dc.PetTypes)
}
