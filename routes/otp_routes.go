package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/petopia/petopia_backend/controllers"
)

// RegisterOtpRoutes sets up the public OTP routes.
func RegisterOtpRoutes(e *echo.Echo, oc *controllers.OtpController) {
	otp := e.Group("/api/otp")

	otp.POST("/genotp", oc.GenerateOTP)
	otp.POST("/verifyotp", oc.VerifyOTP)
	otp.POST("/forgototp", oc.ForgotOTP)
}
