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

// EquipmentHandler holds the equipment service dependency.
type EquipmentHandler struct {
	equipmentService service.EquipmentService
}

// NewEquipmentHandler creates a new EquipmentHandler.
func NewEquipmentHandler(equipmentService service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipmentService: equipmentService}
}

// --- Request/Response Structs ---

type CreateEquipmentRequest struct {
	Name          string    `json:"name" binding:"required"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Manufacturer  string    `json:"manufacturer"`
	SerialNumber  string    `json:"serialNumber"`
	PurchaseDate  time.Time `json:"purchaseDate"`
	PurchasePrice float64   `json:"purchasePrice" binding:"omitempty,gte=0"`
	Location      string    `json:"location"`
}

// --- Handler Methods ---

// CreateEquipment godoc
// @Summary Register a new piece of equipment
// @Tags Equipment
// @Accept json
// @Produce json
// @Param equipment body CreateEquipmentRequest true "Equipment details"
// @Success 201 {object} domain.Equipment
// @Failure 400 {object} gin.H "Invalid input"
// @Router /equipment [post]
func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	equipment := &domain.Equipment{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Manufacturer:  req.Manufacturer,
		SerialNumber:  req.SerialNumber,
		PurchaseDate:  req.PurchaseDate,
		PurchasePrice: req.PurchasePrice,
		Location:      req.Location,
	}

	created, err := h.equipmentService.CreateEquipment(c.Request.Context(), equipment)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create equipment")
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetEquipmentByID godoc
// @Summary Get a piece of equipment by ID
// @Tags Equipment
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 200 {object} domain.Equipment
// @Failure 404 {object} gin.H "Equipment not found"
// @Router /equipment/{id} [get]
func (h *EquipmentHandler) GetEquipmentByID(c *gin.Context) {
	equipmentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid equipment ID format")
		return
	}

	equipment, err := h.equipmentService.GetEquipmentByID(c.Request.Context(), equipmentID)
	if err != nil {
		if errors.Is(err, service.ErrEquipmentNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve equipment")
		}
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// GetEquipment godoc
// @Summary List all equipment
// @Tags Equipment
// @Produce json
// @Success 200 {array} domain.Equipment
// @Router /equipment [get]
func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	equipment, err := h.equipmentService.GetEquipment(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve equipment")
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// DeleteEquipment godoc
// @Summary Retire a piece of equipment
// @Tags Equipment
// @Param id path string true "Equipment ID"
// @Success 204 "Equipment removed"
// @Failure 404 {object} gin.H "Equipment not found"
// @Router /equipment/{id} [delete]
func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	equipmentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid equipment ID format")
		return
	}

	if err := h.equipmentService.DeleteEquipment(c.Request.Context(), equipmentID); err != nil {
		if errors.Is(err, service.ErrEquipmentNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to remove equipment")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
