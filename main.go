package main

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/petopia/petopia_backend/config"
	"github.com/petopia/petopia_backend/controllers"
	"github.com/petopia/petopia_backend/middleware"
	"github.com/petopia/petopia_backend/routes"
	"github.com/petopia/petopia_backend/utils"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}
	if !cfg.MailConfigured() {
		log.Println("Warning: SMTP configuration incomplete, email delivery will fail")
	}

	// Connect to database and (optionally) redis
	db := config.ConnectDB(cfg)
	rdb := config.ConnectRedis(cfg)

	// Ensure the photo directories exist before serving them
	if err := utils.InitializeStorage(); err != nil {
		log.Fatal("Storage error: ", err)
	}

	mail := utils.NewEmailService(cfg)

	// Create a new Echo instance
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	// Middleware
	rateLimiter := middleware.NewRateLimiter()
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())

	e.GET("/", func(c echo.Context) error {
		return c.String(200, "Server is Ready")
	})
	e.GET("/health", controllers.NewHealthController(db).Health)

	// Uploaded pet photos
	e.Static("/images", "images")

	// Initialize controllers
	userController := controllers.NewUserController(db, cfg, mail)
	otpController := controllers.NewOtpController(db, cfg, mail, rdb)
	petController := controllers.NewPetController(db, cfg, mail)
	formController := controllers.NewAdoptFormController(db)
	dashboardController := controllers.NewDashboardController(db)

	// Public routes
	routes.RegisterOtpRoutes(e, otpController)
	routes.RegisterUserRoutes(e, userController)

	// Authenticated routes
	auth := middleware.JWTMiddleware(cfg.JWTSecret, db)
	routes.RegisterDashboardRoutes(e, dashboardController, auth)
	routes.RegisterPetRoutes(e, petController, auth)
	routes.RegisterFormRoutes(e, formController, auth)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
