// controllers/user_controller.go
package controllers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/petopia/petopia_backend/config"
	"github.com/petopia/petopia_backend/middleware"
	"github.com/petopia/petopia_backend/models"
	"github.com/petopia/petopia_backend/utils"
)

// UserController handles signup, login and profile management.
type UserController struct {
	DB   *mongo.Database
	Cfg  *config.Config
	Mail *utils.EmailService
}

// NewUserController creates a new user controller
func NewUserController(db *mongo.Database, cfg *config.Config, mail *utils.EmailService) *UserController {
	return &UserController{DB: db, Cfg: cfg, Mail: mail}
}

func (uc *UserController) users() *mongo.Collection {
	return uc.DB.Collection(config.UsersCollection)
}

// Signup registers a new user and returns a session token. The welcome
// email is best-effort: a delivery failure is logged, never surfaced.
func (uc *UserController) Signup(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}

	req.Name = utils.SanitizeInput(req.Name)
	if req.Name == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "All fields must be filled"})
	}

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Email not valid"})
	}

	if !utils.IsStrongPassword(req.Password) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Password not strong enough"})
	}

	// Fast-path duplicate check; the unique index is the authority
	err = uc.users().FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Email Already in Use"})
	}
	if err != mongo.ErrNoDocuments {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to check user"})
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to hash password"})
	}

	now := time.Now()
	user := models.User{
		Name:      req.Name,
		Email:     email,
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := uc.users().InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Email Already in Use"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create user"})
	}

	if err := uc.Mail.SendWelcome(email, user.Name); err != nil {
		log.Printf("Error sending welcome email to %s: %v", email, err)
	}

	userID := result.InsertedID.(primitive.ObjectID).Hex()

	token, err := middleware.GenerateJWT(userID, uc.Cfg.JWTSecret)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create token"})
	}

	return c.JSON(http.StatusOK, models.AuthResponse{
		UserName: user.Name,
		Email:    email,
		Token:    token,
	})
}

// Login authenticates a user by email and password.
func (uc *UserController) Login(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "All fields must be filled"})
	}

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Email not valid"})
	}

	var user models.User
	err = uc.users().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "User not Found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to retrieve user"})
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Incorrect Password"})
	}

	token, err := middleware.GenerateJWT(user.ID.Hex(), uc.Cfg.JWTSecret)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create token"})
	}

	return c.JSON(http.StatusOK, models.AuthResponse{
		UserName: user.Name,
		Email:    email,
		Token:    token,
	})
}

// UpdateUser changes a user's name and email. A no-op update and a new
// email already owned by another account are both rejected.
func (uc *UserController) UpdateUser(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}

	req.Name = utils.SanitizeInput(req.Name)
	if req.Name == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.NewEmail) == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "All fields must be filled"})
	}

	var user models.User
	err := uc.users().FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(req.Email))}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to retrieve user"})
	}

	newEmail, err := utils.SanitizeEmail(req.NewEmail)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "New email is not valid"})
	}

	if user.Name == req.Name && user.Email == newEmail {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "No changes detected"})
	}

	if user.Email != newEmail {
		err = uc.users().FindOne(ctx, bson.M{"email": newEmail}).Err()
		if err == nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Email already in use"})
		}
		if err != mongo.ErrNoDocuments {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to check email"})
		}
	}

	update := bson.M{"$set": bson.M{
		"name":      req.Name,
		"email":     newEmail,
		"updatedAt": time.Now(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.User
	err = uc.users().FindOneAndUpdate(ctx, bson.M{"_id": user.ID}, update, opts).Decode(&updated)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update user"})
	}

	updated.Password = ""
	return c.JSON(http.StatusOK, map[string]interface{}{"updatedUser": updated})
}

// UpdatePassword replaces a user's password. Reusing the current
// password is rejected; the replacement is hashed with a fresh salt.
func (uc *UserController) UpdatePassword(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}

	if strings.TrimSpace(req.Email) == "" || req.NewPassword == "" || req.NewConfirmPassword == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "All fields must be filled"})
	}

	if !utils.IsStrongPassword(req.NewPassword) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Password not strong enough"})
	}

	if req.NewPassword != req.NewConfirmPassword {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Both passwords do not match"})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	err := uc.users().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Email not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to retrieve user"})
	}

	if utils.CheckPasswordHash(req.NewPassword, user.Password) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "You can't reuse your old password"})
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to hash password"})
	}

	_, err = uc.users().UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{
		"password":  hashed,
		"updatedAt": time.Now(),
	}})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update password"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"email":   user.Email,
	})
}
