// controllers/adopt_form_controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/petopia/petopia_backend/config"
	"github.com/petopia/petopia_backend/models"
	"github.com/petopia/petopia_backend/utils"
)

// AdoptFormController handles adoption-interest applications.
type AdoptFormController struct {
	DB *mongo.Database
}

// NewAdoptFormController creates a new adoption form controller
func NewAdoptFormController(db *mongo.Database) *AdoptFormController {
	return &AdoptFormController{DB: db}
}

func (fc *AdoptFormController) forms() *mongo.Collection {
	return fc.DB.Collection(config.AdoptFormsCollection)
}

// SaveForm stores a new adoption application.
func (fc *AdoptFormController) SaveForm(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.AdoptFormRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "All fields must be filled"})
	}

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Email not valid"})
	}

	now := time.Now()
	form := models.AdoptForm{
		Email:              email,
		PhoneNo:            utils.SanitizeInput(req.PhoneNo),
		LivingSituation:    utils.SanitizeInput(req.LivingSituation),
		PreviousExperience: utils.SanitizeInput(req.PreviousExperience),
		AnyPet:             utils.SanitizeInput(req.AnyPet),
		PetID:              req.PetID,
		Fee:                req.Fee,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	result, err := fc.forms().InsertOne(ctx, form)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save form"})
	}
	form.ID = result.InsertedID.(primitive.ObjectID)

	return c.JSON(http.StatusOK, form)
}

// GetAdoptForms returns every application, newest first.
func (fc *AdoptFormController) GetAdoptForms(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := fc.forms().Find(ctx, bson.M{}, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to retrieve forms"})
	}

	forms := []models.AdoptForm{}
	if err := cursor.All(ctx, &forms); err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to decode forms"})
	}

	return c.JSON(http.StatusOK, forms)
}

// DeleteForm rejects a single application by id.
func (fc *AdoptFormController) DeleteForm(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid form ID"})
	}

	result, err := fc.forms().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete form"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Form not found"})
	}

	return c.JSON(http.StatusOK, models.MessageResponse{Message: "Form deleted successfully"})
}

// DeleteAllRequests removes every application referencing a pet id.
func (fc *AdoptFormController) DeleteAllRequests(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	petID := c.Param("id")
	if petID == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Pet ID is required"})
	}

	result, err := fc.forms().DeleteMany(ctx, bson.M{"petId": petID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete forms"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Forms not found"})
	}

	return c.JSON(http.StatusOK, models.MessageResponse{Message: "Forms deleted successfully"})
}
