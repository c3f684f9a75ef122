package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Otp is a transient verification record, at most one per email. The
// stored code is a bcrypt hash; the record is deleted on successful
// verification, on expiry detected at next access, or when delivery of
// the plaintext code fails.
type Otp struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	OtpCode   string             `json:"-" bson:"otpCode"`
	ExpiresAt time.Time          `json:"expiresAt" bson:"expiresAt"`
}

// GenOtpRequest is the body for POST /api/otp/genotp
type GenOtpRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyOtpRequest is the body for POST /api/otp/verifyotp
type VerifyOtpRequest struct {
	Email string `json:"email" validate:"required"`
	Otp   string `json:"otp" validate:"required"`
}

// ForgotOtpRequest is the body for POST /api/otp/forgototp
type ForgotOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// OtpEmailResponse is returned when an OTP has been generated and sent
type OtpEmailResponse struct {
	Email string `json:"email"`
}

// VerifyOtpResponse is returned on successful verification
type VerifyOtpResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
