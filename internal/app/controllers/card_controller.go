package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dimasraf/sekolahku/internal/app/models"
	"github.com/dimasraf/sekolahku/internal/app/models/dto"
	"github.com/dimasraf/sekolahku/internal/app/services"
	"github.com/dimasraf/sekolahku/internal/middleware"
	"github.com/dimasraf/sekolahku/internal/pkg/apperrors"
)

// CardController handles student ID card operations
type CardController struct {
	cardService *services.CardService
}

// NewCardController creates a new CardController
func NewCardController(cardService *services.CardService) *CardController {
	return &CardController{
		cardService: cardService,
	}
}

// CreateStudentCard issues a card for a student
// @Summary Issue a student card
// @Description Issues a new active card with a generated card number
// @Tags cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.CreateStudentCardRequest true "Card expiry date"
// @Success 201 {object} dto.APIResponse{data=models.StudentCard} "Card issued successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/cards [post]
func (c *CardController) CreateStudentCard(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	var req dto.CreateStudentCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	card, err := c.cardService.CreateStudentCard(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(card))
}

// GetStudentCard retrieves the active card of a student
// @Summary Get the active student card
// @Description Retrieves the student's current active card; data is null when the student holds no card
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.StudentCard} "Card retrieved successfully (null when none)"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/cards/active [get]
func (c *CardController) GetStudentCard(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	card, err := c.cardService.GetActiveCard(ctx.Request.Context(), id)
	if err != nil {
		// A cardless student is not an error on this read, only a
		// missing student is
		if errors.Is(err, apperrors.ErrCardNotFound) {
			ctx.JSON(http.StatusOK, dto.NewAPIResponse((*models.StudentCard)(nil)))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(card))
}

// GetStudentWithCard retrieves a student joined with their active card
// @Summary Get a student with their card
// @Description Retrieves the student and their active card; card is null when none exists
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.StudentWithCard} "Student retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/with-card [get]
func (c *CardController) GetStudentWithCard(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	combined, err := c.cardService.GetStudentWithCard(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(combined))
}
