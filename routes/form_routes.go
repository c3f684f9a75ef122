package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/petopia/petopia_backend/controllers"
)

// RegisterFormRoutes sets up the adoption form routes behind the
// authentication middleware.
func RegisterFormRoutes(e *echo.Echo, fc *controllers.AdoptFormController, auth echo.MiddlewareFunc) {
	form := e.Group("/api/form")
	form.Use(auth)

	form.POST("/save", fc.SaveForm)
	form.GET("/getForms", fc.GetAdoptForms)
	form.DELETE("/reject/:id", fc.DeleteForm)
	form.DELETE("/delete/many/:id", fc.DeleteAllRequests)
}
