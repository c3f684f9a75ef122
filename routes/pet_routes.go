package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/petopia/petopia_backend/controllers"
	"github.com/petopia/petopia_backend/models"
)

// RegisterPetRoutes sets up the pet listing routes behind the
// authentication middleware.
func RegisterPetRoutes(e *echo.Echo, pc *controllers.PetController, auth echo.MiddlewareFunc) {
	pets := e.Group("/api/pets")
	pets.Use(auth)

	pets.GET("/request", pc.AllPets(models.PetStatusPending))
	pets.GET("/approvedPets", pc.AllPets(models.PetStatusApproved))
	pets.GET("/adoptedPets", pc.AllPets(models.PetStatusAdopted))
	pets.POST("/services", pc.PostPetRequest)
	pets.PUT("/approving/:id", pc.ApproveRequest)
	pets.DELETE("/delete/:id", pc.DeletePost)
}
