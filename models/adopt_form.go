package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdoptForm is an adoption-interest application for a listed pet.
// Forms are deleted individually when rejected, or in bulk when the
// referenced pet listing is removed.
type AdoptForm struct {
	ID                 primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email              string             `json:"email" bson:"email"`
	PhoneNo            string             `json:"phoneNo" bson:"phoneNo"`
	LivingSituation    string             `json:"livingSituation" bson:"livingSituation"`
	PreviousExperience string             `json:"previousExperience" bson:"previousExperience"`
	AnyPet             string             `json:"anyPet" bson:"anyPet"`
	PetID              string             `json:"petId" bson:"petId"`
	Fee                string             `json:"fee" bson:"fee"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// AdoptFormRequest is the body for POST /api/form/save
type AdoptFormRequest struct {
	Email              string `json:"email" validate:"required"`
	PhoneNo            string `json:"phoneNo" validate:"required"`
	LivingSituation    string `json:"livingSituation" validate:"required"`
	PreviousExperience string `json:"previousExperience" validate:"required"`
	AnyPet             string `json:"anyPet" validate:"required"`
	PetID              string `json:"petId" validate:"required"`
	Fee                string `json:"fee" validate:"required"`
}
