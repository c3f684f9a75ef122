package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pet listing statuses. A listing starts Pending, an admin approves it,
// and it becomes Adopted when an adoption completes.
const (
	PetStatusPending  = "Pending"
	PetStatusApproved = "Approved"
	PetStatusAdopted  = "Adopted"
)

// Pet is a pet listing submitted for adoption.
type Pet struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Age           string             `json:"age" bson:"age"`
	Area          string             `json:"area" bson:"area"`
	Justification string             `json:"justification" bson:"justification"`
	Email         string             `json:"email" bson:"email"`
	Phone         string             `json:"phone" bson:"phone"`
	Type          string             `json:"type" bson:"type"`
	Filename      string             `json:"filename" bson:"filename"`
	Status        string             `json:"status" bson:"status"`
	Amount        string             `json:"amount" bson:"amount"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// PostPetRequest holds the multipart form fields of a listing
// submission; the photo arrives separately in the "picture" file field.
type PostPetRequest struct {
	Name          string `form:"name" validate:"required"`
	Age           string `form:"age" validate:"required"`
	Area          string `form:"area" validate:"required"`
	Justification string `form:"justification" validate:"required"`
	Email         string `form:"email" validate:"required"`
	Phone         string `form:"phone" validate:"required"`
	Type          string `form:"type" validate:"required"`
	Amount        string `form:"amount" validate:"required"`
}

// ApprovePetRequest is the body for PUT /api/pets/approving/:id
type ApprovePetRequest struct {
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status" validate:"required"`
}

// PetTypeCount is one dashboard aggregation bucket: pets grouped by type.
type PetTypeCount struct {
	Type  string `json:"_id" bson:"_id"`
	Count int    `json:"count" bson:"count"`
}
