package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dimasraf/sekolahku/internal/app/controllers"
	"github.com/dimasraf/sekolahku/internal/app/models"
	"github.com/dimasraf/sekolahku/internal/app/models/dto"
	"github.com/dimasraf/sekolahku/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	cardController *controllers.CardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "ok"}))
	})

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/users", authController.CreateUser)
		auth.POST("/login", authController.Login)
	}

	// Public self-service registration shares the student creation handler
	v1.POST("/registrations", studentController.CreateStudent)

	// --- Admin-only routes ---
	admin := v1.Group("")
	admin.Use(authMiddleware.JWTAuth())
	admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		students := admin.Group("/students")
		{
			students.POST("", studentController.CreateStudent)
			students.GET("", studentController.ListStudents)
			students.GET("/:id", studentController.GetStudentByID)
			students.PATCH("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
			students.POST("/:id/photo", studentController.UploadPhoto)

			students.POST("/:id/cards", cardController.CreateStudentCard)
			students.GET("/:id/cards/active", cardController.GetStudentCard)
			students.GET("/:id/with-card", cardController.GetStudentWithCard)
		}
	}
}
