package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/petopia/petopia_backend/controllers"
)

// RegisterUserRoutes sets up the account routes. All four are public:
// signup and login by nature, update and update-password because the
// frontend drives them through the OTP verification flow before the
// user holds a session token.
func RegisterUserRoutes(e *echo.Echo, uc *controllers.UserController) {
	users := e.Group("/api/users")

	users.POST("/signup", uc.Signup)
	users.POST("/login", uc.Login)
	users.PUT("/update", uc.UpdateUser)
	users.PUT("/update-password", uc.UpdatePassword)
}
