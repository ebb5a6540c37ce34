package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"gym-api/internal/domain"
	"gym-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrainerHandler holds the trainer service dependency.
type TrainerHandler struct {
	trainerService service.TrainerService
}

// NewTrainerHandler creates a new TrainerHandler.
func NewTrainerHandler(trainerService service.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainerService: trainerService}
}

// --- Request/Response Structs ---

type CreateTrainerRequest struct {
	FirstName      string    `json:"firstName" binding:"required"`
	LastName       string    `json:"lastName" binding:"required"`
	Email          string    `json:"email" binding:"required,email"`
	PhoneNumber    string    `json:"phoneNumber"`
	Specialization string    `json:"specialization"`
	Certification  string    `json:"certification"`
	HireDate       time.Time `json:"hireDate"`
	HourlyRate     float64   `json:"hourlyRate" binding:"omitempty,gte=0"`
	Bio            string    `json:"bio"`
}

// --- Handler Methods ---

// CreateTrainer godoc
// @Summary Register a new trainer
// @Tags Trainers
// @Accept json
// @Produce json
// @Param trainer body CreateTrainerRequest true "Trainer details"
// @Success 201 {object} domain.Trainer
// @Failure 400 {object} gin.H "Invalid input"
// @Router /trainers [post]
func (h *TrainerHandler) CreateTrainer(c *gin.Context) {
	var req CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainer := &domain.Trainer{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		Specialization: req.Specialization,
		Certification:  req.Certification,
		HireDate:       req.HireDate,
		HourlyRate:     req.HourlyRate,
		Bio:            req.Bio,
	}

	created, err := h.trainerService.CreateTrainer(c.Request.Context(), trainer)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create trainer")
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetTrainerByID godoc
// @Summary Get a trainer by ID
// @Tags Trainers
// @Produce json
// @Param id path string true "Trainer ID"
// @Success 200 {object} domain.Trainer
// @Failure 404 {object} gin.H "Trainer not found"
// @Router /trainers/{id} [get]
func (h *TrainerHandler) GetTrainerByID(c *gin.Context) {
	trainerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format")
		return
	}

	trainer, err := h.trainerService.GetTrainerByID(c.Request.Context(), trainerID)
	if err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve trainer")
		}
		return
	}

	c.JSON(http.StatusOK, trainer)
}

// GetTrainers godoc
// @Summary List all trainers
// @Tags Trainers
// @Produce json
// @Success 200 {array} domain.Trainer
// @Router /trainers [get]
func (h *TrainerHandler) GetTrainers(c *gin.Context) {
	trainers, err := h.trainerService.GetTrainers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve trainers")
		return
	}

	c.JSON(http.StatusOK, trainers)
}

// DeleteTrainer godoc
// @Summary Remove a trainer
// @Tags Trainers
// @Param id path string true "Trainer ID"
// @Success 204 "Trainer removed"
// @Failure 404 {object} gin.H "Trainer not found"
// @Router /trainers/{id} [delete]
func (h *TrainerHandler) DeleteTrainer(c *gin.Context) {
	trainerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format")
		return
	}

	if err := h.trainerService.DeleteTrainer(c.Request.Context(), trainerID); err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to remove trainer")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
