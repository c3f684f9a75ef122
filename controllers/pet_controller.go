// controllers/pet_controller.go
package controllers

import (
	"context"
	"log"
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

// PetController handles pet listing submissions and admin moderation.
type PetController struct {
	DB   *mongo.Database
	Cfg  *config.Config
	Mail *utils.EmailService
}

// NewPetController creates a new pet controller
func NewPetController(db *mongo.Database, cfg *config.Config, mail *utils.EmailService) *PetController {
	return &PetController{DB: db, Cfg: cfg, Mail: mail}
}

func (pc *PetController) pets() *mongo.Collection {
	return pc.DB.Collection(config.PetsCollection)
}

// PostPetRequest accepts a multipart listing submission with the photo
// in the "picture" field. The listing starts Pending; the submission
// confirmation email is best-effort.
func (pc *PetController) PostPetRequest(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.PostPetRequest
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

	file, err := c.FormFile("picture")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "No file uploaded or incorrect field name"})
	}

	if err := utils.ValidatePetPhoto(file); err != nil {
		status := http.StatusUnsupportedMediaType
		if err == utils.ErrPhotoTooLarge {
			status = http.StatusRequestEntityTooLarge
		}
		return c.JSON(status, models.ErrorResponse{Error: err.Error()})
	}

	filename, err := utils.SavePetPhoto(file)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save photo"})
	}

	now := time.Now()
	pet := models.Pet{
		Name:          utils.SanitizeInput(req.Name),
		Age:           utils.SanitizeInput(req.Age),
		Area:          utils.SanitizeInput(req.Area),
		Justification: utils.SanitizeInput(req.Justification),
		Email:         email,
		Phone:         utils.SanitizeInput(req.Phone),
		Type:          utils.SanitizeInput(req.Type),
		Filename:      filename,
		Status:        models.PetStatusPending,
		Amount:        utils.SanitizeInput(req.Amount),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	result, err := pc.pets().InsertOne(ctx, pet)
	if err != nil {
		utils.RemovePetPhoto(filename)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save pet"})
	}
	pet.ID = result.InsertedID.(primitive.ObjectID)

	if err := pc.Mail.SendSubmissionReceived(email, pet.Name); err != nil {
		log.Printf("Error sending submission email to %s: %v", email, err)
	}

	return c.JSON(http.StatusOK, pet)
}

// AllPets returns listings with the given status, newest first.
func (pc *PetController) AllPets(status string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
		cursor, err := pc.pets().Find(ctx, bson.M{"status": status}, opts)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to retrieve pets"})
		}

		var pets []models.Pet
		if err := cursor.All(ctx, &pets); err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to decode pets"})
		}

		if len(pets) == 0 {
			return c.JSON(http.StatusOK, models.ErrorResponse{Error: "No data found"})
		}
		return c.JSON(http.StatusOK, pets)
	}
}

// ApproveRequest updates a listing's contact details and status. An
// Approved transition notifies the owner, best-effort.
func (pc *PetController) ApproveRequest(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid pet ID"})
	}

	var req models.ApprovePetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}

	switch req.Status {
	case models.PetStatusPending, models.PetStatusApproved, models.PetStatusAdopted:
	default:
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid status"})
	}

	set := bson.M{
		"status":    req.Status,
		"updatedAt": time.Now(),
	}
	if req.Email != "" {
		email, err := utils.SanitizeEmail(req.Email)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Email not valid"})
		}
		set["email"] = email
	}
	if req.Phone != "" {
		set["phone"] = utils.SanitizeInput(req.Phone)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var pet models.Pet
	err = pc.pets().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&pet)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Pet not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update pet"})
	}

	if pet.Status == models.PetStatusApproved {
		if err := pc.Mail.SendListingApproved(pet.Email, pet.Name); err != nil {
			log.Printf("Error sending approval email to %s: %v", pet.Email, err)
		}
	}

	return c.JSON(http.StatusOK, pet)
}

// DeletePost removes a listing, its photo and thumbnail, and every
// adoption form referencing it. The removal email is best-effort.
func (pc *PetController) DeletePost(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid pet ID"})
	}

	var pet models.Pet
	err = pc.pets().FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&pet)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Pet not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete pet"})
	}

	utils.RemovePetPhoto(pet.Filename)

	// Cascade: adoption forms for a removed listing are orphans
	_, err = pc.DB.Collection(config.AdoptFormsCollection).DeleteMany(ctx, bson.M{"petId": id.Hex()})
	if err != nil {
		log.Printf("Error cascading adoption form delete for pet %s: %v", id.Hex(), err)
	}

	if err := pc.Mail.SendListingRemoved(pet.Email, pet.Name); err != nil {
		log.Printf("Error sending removal email to %s: %v", pet.Email, err)
	}

	return c.JSON(http.StatusOK, models.MessageResponse{Message: "Pet deleted successfully"})
}
