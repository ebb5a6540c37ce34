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

// BookingHandler holds the booking service dependency.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// --- Request/Response Structs ---

type CreateBookingRequest struct {
	MemberID    string    `json:"memberId" binding:"required"`
	TrainerID   *string   `json:"trainerId"`
	EquipmentID *string   `json:"equipmentId"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
	Type        string    `json:"type" binding:"required,oneof=personal_training equipment group_class"`
	Notes       string    `json:"notes"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// --- Handler Methods ---

// CreateBooking godoc
// @Summary Book a trainer session or piece of equipment
// @Tags Bookings
// @Accept json
// @Produce json
// @Param booking body CreateBookingRequest true "Booking details"
// @Success 201 {object} domain.Booking
// @Failure 400 {object} gin.H "Invalid input"
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	memberID, err := primitive.ObjectIDFromHex(req.MemberID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid member ID format")
		return
	}

	booking := &domain.Booking{
		MemberID:  memberID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Type:      domain.BookingType(req.Type),
		Notes:     req.Notes,
	}

	if req.TrainerID != nil {
		trainerID, err := primitive.ObjectIDFromHex(*req.TrainerID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format")
			return
		}
		booking.TrainerID = &trainerID
	}
	if req.EquipmentID != nil {
		equipmentID, err := primitive.ObjectIDFromHex(*req.EquipmentID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid equipment ID format")
			return
		}
		booking.EquipmentID = &equipmentID
	}

	created, err := h.bookingService.CreateBooking(c.Request.Context(), booking)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationFailed), errors.Is(err, service.ErrInvalidBookingWindow):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrMemberNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetBookingByID godoc
// @Summary Get a booking by ID
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} domain.Booking
// @Failure 404 {object} gin.H "Booking not found"
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	bookingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	booking, err := h.bookingService.GetBookingByID(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve booking")
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// GetBookingsForMember godoc
// @Summary List all bookings made by a member
// @Tags Bookings
// @Produce json
// @Param memberId query string true "Member ID"
// @Success 200 {array} domain.Booking
// @Router /bookings [get]
func (h *BookingHandler) GetBookingsForMember(c *gin.Context) {
	memberID, err := primitive.ObjectIDFromHex(c.Query("memberId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid or missing memberId query parameter")
		return
	}

	bookings, err := h.bookingService.GetBookingsForMember(c.Request.Context(), memberID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// CancelBooking godoc
// @Summary Cancel a booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param cancellation body CancelBookingRequest false "Cancellation reason"
// @Success 200 {object} domain.Booking
// @Failure 404 {object} gin.H "Booking not found"
// @Failure 409 {object} gin.H "Booking already cancelled"
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	// The body is optional; an empty reason is fine.
	var req CancelBookingRequest
	_ = c.ShouldBindJSON(&req)

	booking, err := h.bookingService.CancelBooking(c.Request.Context(), bookingID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrBookingAlreadyCancelled):
			abortWithError(c, http.StatusConflict, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to cancel booking")
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}
