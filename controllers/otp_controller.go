// controllers/otp_controller.go
package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/petopia/petopia_backend/config"
	"github.com/petopia/petopia_backend/models"
	"github.com/petopia/petopia_backend/utils"
)

// OtpController owns the email verification codes. Lifecycle per
// email: a record is created on issue, and deleted on successful
// verification, on expiry detected at next access, or when the
// delivery email fails. The unique index on otps.email backs the
// at-most-one-live-code invariant when two issuances race.
type OtpController struct {
	DB    *mongo.Database
	Cfg   *config.Config
	Mail  *utils.EmailService
	Redis *redis.Client
}

// NewOtpController creates a new OTP controller
func NewOtpController(db *mongo.Database, cfg *config.Config, mail *utils.EmailService, rdb *redis.Client) *OtpController {
	return &OtpController{DB: db, Cfg: cfg, Mail: mail, Redis: rdb}
}

func (oc *OtpController) otps() *mongo.Collection {
	return oc.DB.Collection(config.OtpsCollection)
}

// remainingWait splits the time until expiry into whole minutes and
// leftover seconds for the resend-throttle message.
func remainingWait(expiresAt, now time.Time) (int, int) {
	remaining := expiresAt.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	minutes := int(remaining / time.Minute)
	seconds := int(remaining/time.Second) % 60
	return minutes, seconds
}

func throttleMessage(expiresAt, now time.Time) string {
	minutes, seconds := remainingWait(expiresAt, now)
	return fmt.Sprintf("An OTP has already been sent. Please wait %d minute(s) and %d second(s) before requesting again.",
		minutes, seconds)
}

// resolveExisting enforces the resend throttle. A live record for the
// email yields a throttle error; an expired one is purged so a new
// record can take its place. No background sweep exists: expiry is
// always detected here or in VerifyOTP.
func (oc *OtpController) resolveExisting(ctx context.Context, c echo.Context, email string) (bool, error) {
	var existing models.Otp
	err := oc.otps().FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return true, c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to check existing OTP"})
	}

	now := time.Now()
	if existing.ExpiresAt.After(now) {
		return true, c.JSON(http.StatusTooManyRequests, models.ErrorResponse{Error: throttleMessage(existing.ExpiresAt, now)})
	}

	if _, err := oc.otps().DeleteOne(ctx, bson.M{"email": email}); err != nil {
		return true, c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to remove expired OTP"})
	}
	return false, nil
}

// issue generates, stores and delivers a code. The record is only kept
// if the email went out: on delivery failure it is rolled back.
func (oc *OtpController) issue(ctx context.Context, c echo.Context, name, email string, deliver func(otp string) error) error {
	otp, err := utils.GenerateOTP()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate OTP"})
	}

	hash, err := utils.HashPassword(otp)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to hash OTP"})
	}

	record := models.Otp{
		Name:      name,
		Email:     email,
		OtpCode:   hash,
		ExpiresAt: time.Now().Add(utils.OtpValidity),
	}

	if _, err := oc.otps().InsertOne(ctx, record); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// A concurrent issuance won the race; report its remaining
			// wait. Fall back to our own window if its record is gone.
			expiresAt := record.ExpiresAt
			var winner models.Otp
			if err := oc.otps().FindOne(ctx, bson.M{"email": email}).Decode(&winner); err == nil {
				expiresAt = winner.ExpiresAt
			}
			return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{Error: throttleMessage(expiresAt, time.Now())})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save OTP"})
	}

	if err := deliver(otp); err != nil {
		log.Printf("Error sending OTP email to %s: %v", email, err)
		if _, delErr := oc.otps().DeleteOne(ctx, bson.M{"email": email}); delErr != nil {
			log.Printf("Error cleaning up OTP for %s: %v", email, delErr)
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to send OTP email"})
	}

	return c.JSON(http.StatusOK, models.OtpEmailResponse{Email: email})
}

// GenerateOTP issues a registration code for an email that does not
// yet belong to a user.
func (oc *OtpController) GenerateOTP(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.GenOtpRequest
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

	err = oc.DB.Collection(config.UsersCollection).FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Email already in use"})
	}
	if err != mongo.ErrNoDocuments {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to check user"})
	}

	if handled, resp := oc.resolveExisting(ctx, c, email); handled {
		return resp
	}

	return oc.issue(ctx, c, req.Name, email, func(otp string) error {
		return oc.Mail.SendOTP(email, req.Name, otp)
	})
}

// ForgotOTP issues a password-reset code for an existing user.
func (oc *OtpController) ForgotOTP(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.ForgotOtpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}

	if strings.TrimSpace(req.Email) == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Email is required"})
	}

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Email not valid"})
	}

	var user models.User
	err = oc.DB.Collection(config.UsersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Email not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to check user"})
	}

	if handled, resp := oc.resolveExisting(ctx, c, email); handled {
		return resp
	}

	return oc.issue(ctx, c, user.Name, email, func(otp string) error {
		return oc.Mail.SendPasswordResetOTP(email, user.Name, otp)
	})
}

// VerifyOTP checks a candidate code. Verification is single-use: a
// matching record is purged, so a second verify sees not-found.
func (oc *OtpController) VerifyOTP(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.VerifyOtpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}

	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Otp) == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "All fields must be filled"})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := utils.ValidateOTPAttempts(ctx, email, oc.Redis); err != nil {
		if err == utils.ErrTooManyAttempts {
			return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{Error: err.Error()})
		}
		// Attempt limiting is advisory; a redis hiccup must not block verification
		log.Printf("Error checking OTP attempts for %s: %v", email, err)
	}

	var record models.Otp
	err := oc.otps().FindOne(ctx, bson.M{"email": email}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "OTP not found for this email"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to retrieve OTP"})
	}

	if record.ExpiresAt.Before(time.Now()) {
		if _, err := oc.otps().DeleteOne(ctx, bson.M{"email": email}); err != nil {
			log.Printf("Error purging expired OTP for %s: %v", email, err)
		}
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "OTP has expired"})
	}

	if !utils.CheckPasswordHash(req.Otp, record.OtpCode) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Incorrect OTP"})
	}

	if _, err := oc.otps().DeleteOne(ctx, bson.M{"email": email}); err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to consume OTP"})
	}

	return c.JSON(http.StatusOK, models.VerifyOtpResponse{
		Success: true,
		Message: "OTP verified successfully",
	})
}
