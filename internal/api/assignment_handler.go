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

// AssignmentHandler holds the assignment service dependency.
type AssignmentHandler struct {
	assignmentService service.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(assignmentService service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

// --- Request/Response Structs ---

type CreateAssignmentRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	TrainerID    string     `json:"trainerId" binding:"required"`
	MemberID     *string    `json:"memberId"`
	DueDate      *time.Time `json:"dueDate"`
	Type         string     `json:"type" binding:"required,oneof=exercise nutrition assessment"`
	Instructions string     `json:"instructions"`
	Points       int        `json:"points" binding:"omitempty,gte=0"`
	IsPublic     bool       `json:"isPublic"`
}

type MediaUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	Description string `json:"description"`
}

// --- Handler Methods ---

// CreateAssignment godoc
// @Summary Create a new assignment
// @Description A trainer hands out a task to one member or to all members.
// @Tags Assignments
// @Accept json
// @Produce json
// @Param assignment body CreateAssignmentRequest true "Assignment details"
// @Success 201 {object} domain.Assignment
// @Failure 400 {object} gin.H "Invalid input"
// @Router /assignments [post]
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainerID, err := primitive.ObjectIDFromHex(req.TrainerID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format")
		return
	}

	assignment := &domain.Assignment{
		Title:        req.Title,
		Description:  req.Description,
		TrainerID:    trainerID,
		DueDate:      req.DueDate,
		Type:         domain.AssignmentType(req.Type),
		Instructions: req.Instructions,
		Points:       req.Points,
		IsPublic:     req.IsPublic,
	}

	if req.MemberID != nil {
		memberID, err := primitive.ObjectIDFromHex(*req.MemberID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid member ID format")
			return
		}
		assignment.MemberID = &memberID
	}

	created, err := h.assignmentService.CreateAssignment(c.Request.Context(), assignment)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create assignment")
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetAssignmentByID godoc
// @Summary Get an assignment by ID
// @Tags Assignments
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} service.AssignmentDetail
// @Failure 404 {object} gin.H "Assignment not found"
// @Router /assignments/{id} [get]
func (h *AssignmentHandler) GetAssignmentByID(c *gin.Context) {
	assignmentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid assignment ID format")
		return
	}

	detail, err := h.assignmentService.GetAssignmentByID(c.Request.Context(), assignmentID)
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve assignment")
		}
		return
	}

	c.JSON(http.StatusOK, detail)
}

// GetAssignments godoc
// @Summary List all assignments
// @Tags Assignments
// @Produce json
// @Success 200 {array} service.AssignmentDetail
// @Router /assignments [get]
func (h *AssignmentHandler) GetAssignments(c *gin.Context) {
	details, err := h.assignmentService.GetAssignments(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve assignments")
		return
	}

	c.JSON(http.StatusOK, details)
}

// DeleteAssignment godoc
// @Summary Remove an assignment
// @Tags Assignments
// @Param id path string true "Assignment ID"
// @Success 204 "Assignment removed"
// @Failure 404 {object} gin.H "Assignment not found"
// @Router /assignments/{id} [delete]
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	assignmentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid assignment ID format")
		return
	}

	if err := h.assignmentService.DeleteAssignment(c.Request.Context(), assignmentID); err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to remove assignment")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// RequestMediaUpload godoc
// @Summary Request a presigned upload URL for assignment media
// @Description Records the media metadata and returns a presigned URL the client uploads the file to.
// @Tags Assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Param media body MediaUploadRequest true "Media details"
// @Success 201 {object} service.MediaUploadTicket
// @Failure 404 {object} gin.H "Assignment not found"
// @Router /assignments/{id}/media [post]
func (h *AssignmentHandler) RequestMediaUpload(c *gin.Context) {
	assignmentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid assignment ID format")
		return
	}

	var req MediaUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	ticket, err := h.assignmentService.RequestMediaUpload(c.Request.Context(), assignmentID, req.FileName, req.ContentType, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to prepare media upload")
		}
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

// GetMediaDownloads godoc
// @Summary Get presigned download URLs for assignment media
// @Tags Assignments
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {array} service.MediaDownload
// @Failure 404 {object} gin.H "Assignment not found"
// @Router /assignments/{id}/media [get]
func (h *AssignmentHandler) GetMediaDownloads(c *gin.Context) {
	assignmentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid assignment ID format")
		return
	}

	downloads, err := h.assignmentService.GetMediaDownloads(c.Request.Context(), assignmentID)
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve assignment media")
		}
		return
	}

	c.JSON(http.StatusOK, downloads)
}
