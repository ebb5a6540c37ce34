package api

import (
	"net/http"

	"gym-api/internal/domain"
	"gym-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every handler into the router. The suggestion endpoint
// and auth are public; everything else requires a valid JWT.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	suggestionService service.SuggestionService,
	memberService service.MemberService,
	trainerService service.TrainerService,
	equipmentService service.EquipmentService,
	assignmentService service.AssignmentService,
	bookingService service.BookingService,
) {

	authHandler := NewAuthHandler(authService)
	scheduleHandler := NewScheduleHandler(suggestionService)
	memberHandler := NewMemberHandler(memberService)
	trainerHandler := NewTrainerHandler(trainerService)
	equipmentHandler := NewEquipmentHandler(equipmentService)
	assignmentHandler := NewAssignmentHandler(assignmentService)
	bookingHandler := NewBookingHandler(bookingService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// The suggestion endpoint is public: it operates on the submitted
		// profile only and touches no stored data.
		apiV1.POST("/schedule/suggest", scheduleHandler.SuggestWorkout)
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr, "role": role})
		})

		// --- Member Routes ---
		memberGroup := protected.Group("/members")
		{
			memberGroup.POST("", RoleMiddleware(domain.RoleTrainer), memberHandler.CreateMember)
			memberGroup.GET("", memberHandler.GetMembers)
			memberGroup.GET("/:id", memberHandler.GetMemberByID)
			memberGroup.DELETE("/:id", RoleMiddleware(domain.RoleTrainer), memberHandler.DeleteMember)
		}

		// --- Trainer Routes ---
		trainerGroup := protected.Group("/trainers")
		{
			trainerGroup.POST("", RoleMiddleware(domain.RoleTrainer), trainerHandler.CreateTrainer)
			trainerGroup.GET("", trainerHandler.GetTrainers)
			trainerGroup.GET("/:id", trainerHandler.GetTrainerByID)
			trainerGroup.DELETE("/:id", RoleMiddleware(domain.RoleTrainer), trainerHandler.DeleteTrainer)
		}

		// --- Equipment Routes ---
		equipmentGroup := protected.Group("/equipment")
		{
			equipmentGroup.POST("", RoleMiddleware(domain.RoleTrainer), equipmentHandler.CreateEquipment)
			equipmentGroup.GET("", equipmentHandler.GetEquipment)
			equipmentGroup.GET("/:id", equipmentHandler.GetEquipmentByID)
			equipmentGroup.DELETE("/:id", RoleMiddleware(domain.RoleTrainer), equipmentHandler.DeleteEquipment)
		}

		// --- Assignment Routes ---
		assignmentGroup := protected.Group("/assignments")
		{
			assignmentGroup.POST("", RoleMiddleware(domain.RoleTrainer), assignmentHandler.CreateAssignment)
			assignmentGroup.GET("", assignmentHandler.GetAssignments)
			assignmentGroup.GET("/:id", assignmentHandler.GetAssignmentByID)
			assignmentGroup.DELETE("/:id", RoleMiddleware(domain.RoleTrainer), assignmentHandler.DeleteAssignment)

			// Media attachments (presigned S3 upload/download)
			assignmentGroup.POST("/:id/media", RoleMiddleware(domain.RoleTrainer), assignmentHandler.RequestMediaUpload)
			assignmentGroup.GET("/:id/media", assignmentHandler.GetMediaDownloads)
		}

		// --- Booking Routes ---
		bookingGroup := protected.Group("/bookings")
		{
			bookingGroup.POST("", bookingHandler.CreateBooking)
			bookingGroup.GET("", bookingHandler.GetBookingsForMember)
			bookingGroup.GET("/:id", bookingHandler.GetBookingByID)
			bookingGroup.POST("/:id/cancel", bookingHandler.CancelBooking)
		}
	}
}
