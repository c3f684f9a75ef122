// controllers/dashboard_controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/petopia/petopia_backend/config"
	"github.com/petopia/petopia_backend/models"
)

// DashboardController serves the admin aggregate counts.
type DashboardController struct {
	DB *mongo.Database
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(db *mongo.Database) *DashboardController {
	return &DashboardController{DB: db}
}

// UserRegistrations returns the total number of registered users.
func (dc *DashboardController) UserRegistrations(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := dc.DB.Collection(config.UsersCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to count users"})
	}

	var results []struct {
		Count int `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to decode count"})
	}

	total := 0
	if len(results) > 0 {
		total = results[0].Count
	}

	return c.JSON(http.StatusOK, map[string]int{"count": total})
}

// PetTypes returns the number of listings grouped by pet type.
func (dc *DashboardController) PetTypes(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$type"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := dc.DB.Collection(config.PetsCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to count pet types"})
	}

	types := []models.PetTypeCount{}
	if err := cursor.All(ctx, &types); err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to decode pet types"})
	}

	return c.JSON(http.StatusOK, types)
}
