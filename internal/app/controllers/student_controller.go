package controllers

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dimasraf/sekolahku/internal/app/models"
	"github.com/dimasraf/sekolahku/internal/app/models/dto"
	"github.com/dimasraf/sekolahku/internal/app/services"
	"github.com/dimasraf/sekolahku/internal/middleware"
	"github.com/dimasraf/sekolahku/internal/pkg/filestorage"
	"github.com/dimasraf/sekolahku/internal/pkg/logger"
)

const studentPhotoSubdir = "students"

// StudentController handles student registration and directory operations
type StudentController struct {
	studentService *services.StudentService
	fileStorage    filestorage.FileStorage
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, fileStorage filestorage.FileStorage) *StudentController {
	return &StudentController{
		studentService: studentService,
		fileStorage:    fileStorage,
	}
}

// CreateStudent handles student registration
// @Summary Register a student
// @Description Registers a new student and assigns the next student number
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Registration form"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 409 {object} dto.ErrorResponse "NISN already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(student))
}

// GetStudentByID retrieves a student
// @Summary Get student details
// @Description Retrieves a single student by its numeric ID
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// ListStudents retrieves the student directory
// @Summary List students
// @Description Retrieves students with optional substring filters on NISN and name
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param nisn query string false "NISN substring filter"
// @Param nama_lengkap query string false "Name substring filter (case-insensitive)"
// @Param limit query int false "Page size" default(50) maximum(200)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	var query dto.ListStudentsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	students, err := c.studentService.ListStudents(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if students == nil {
		students = []*models.Student{}
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// UpdateStudent applies a partial update
// @Summary Update a student
// @Description Applies a partial update; omitted fields are left unchanged
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.UpdateStudentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "NISN already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [patch]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// DeleteStudent removes a student and its dependents
// @Summary Delete a student
// @Description Deletes a student together with their cards and linked account
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.DeleteStudentResponse} "Deletion outcome"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	deleted, err := c.studentService.DeleteStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.DeleteStudentResponse{Deleted: deleted}))
}

// UploadPhoto stores a student photo and records its location
// @Summary Upload a student photo
// @Description Stores the uploaded image and updates the student's photo reference
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param photo formData file true "Photo file (jpg, jpeg or png)"
// @Success 200 {object} dto.APIResponse{data=dto.UploadPhotoResponse} "Photo uploaded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid file format or missing file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/photo [post]
func (c *StudentController) UploadPhoto(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	file, err := ctx.FormFile("photo")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid or missing file")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unsupported file type")
		errorDetail = errorDetail.WithDetails("Photo must be a jpg, jpeg or png file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// Confirm the student exists before writing anything to disk
	if _, err := c.studentService.GetStudentByID(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	savedPath, err := c.fileStorage.SaveFileWithPath(file, studentPhotoSubdir)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	previous, err := c.studentService.UpdatePhoto(ctx.Request.Context(), id, savedPath)
	if err != nil {
		// The record was not updated, remove the orphaned upload
		if cleanupErr := c.fileStorage.DeleteFile(savedPath); cleanupErr != nil {
			logger.Warn().Err(cleanupErr).Str("path", savedPath).Msg("Failed to remove orphaned upload")
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	if previous != nil {
		if err := c.fileStorage.DeleteFile(*previous); err != nil {
			logger.Warn().Err(err).Str("path", *previous).Msg("Failed to remove replaced photo")
		}
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.UploadPhotoResponse{FotoSiswa: savedPath}))
}

// parseStudentID reads the :id path parameter, reporting a 400 on failure
func parseStudentID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
