// controllers/health_controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthController reports process and database liveness.
type HealthController struct {
	DB *mongo.Database
}

// NewHealthController creates a new health controller
func NewHealthController(db *mongo.Database) *HealthController {
	return &HealthController{DB: db}
}

// Health pings the database so the probe reflects real connectivity.
func (hc *HealthController) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := hc.DB.Client().Ping(ctx, nil); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status":   "degraded",
			"database": "disconnected",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": "connected",
	})
}
