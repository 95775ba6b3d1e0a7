package catalog

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"trainmydog/internal/domain"
	"trainmydog/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// FileStore saves an uploaded blob and returns its stable reference path;
// URL maps a stored path to where clients can fetch it.
type FileStore interface {
	Save(ctx context.Context, subdir string, fh *multipart.FileHeader) (string, error)
	URL(relPath string) string
}

type Handler struct {
	service *Service
	files   FileStore
}

func NewHandler(service *Service, files FileStore) *Handler {
	return &Handler{service: service, files: files}
}

// RegisterPublicRoutes mounts the catalog endpoints visible without a token.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/courses", h.ListPublic)
	rg.GET("/courses/:id", h.GetPublic)
}

// RegisterTrainerRoutes mounts the owner-side course management endpoints.
func (h *Handler) RegisterTrainerRoutes(rg *gin.RouterGroup) {
	rg.GET("/trainer/courses", h.ListMine)
	rg.POST("/trainer/courses", h.Create)
	rg.PUT("/trainer/courses/:id", h.Update)
	rg.DELETE("/trainer/courses/:id", h.Delete)
	rg.POST("/trainer/courses/:id/publish", h.Publish)
	rg.POST("/trainer/courses/:id/unpublish", h.Unpublish)
	rg.POST("/trainer/courses/:id/cover", h.UploadCover)
}

func (h *Handler) ListPublic(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	courses, total, err := h.service.ListPublic(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list courses")
		return
	}

	views := make([]CourseView, 0, len(courses))
	for i := range courses {
		views = append(views, toCourseView(&courses[i]))
	}

	response.Success(c, http.StatusOK, gin.H{
		"courses": views,
		"total":   total,
	})
}

func (h *Handler) GetPublic(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid course ID")
		return
	}

	course, err := h.service.GetPublic(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to load course")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"course": toCourseView(course)})
}

func (h *Handler) ListMine(c *gin.Context) {
	courses, err := h.service.ListMine(c.Request.Context(), actorFrom(c))
	if err != nil {
		h.writeError(c, err, "Failed to list courses")
		return
	}

	views := make([]CourseView, 0, len(courses))
	for i := range courses {
		views = append(views, toCourseView(&courses[i]))
	}

	response.Success(c, http.StatusOK, gin.H{"courses": views})
}

func (h *Handler) Create(c *gin.Context) {
	var req CourseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	course, err := h.service.CreateCourse(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		h.writeError(c, err, "Failed to create course")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"course": toCourseView(course)})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid course ID")
		return
	}

	var req CourseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	course, err := h.service.UpdateCourse(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update course")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"course": toCourseView(course)})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid course ID")
		return
	}

	if err := h.service.DeleteCourse(c.Request.Context(), actorFrom(c), id); err != nil {
		h.writeError(c, err, "Failed to delete course")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Publish(c *gin.Context)   { h.setPublished(c, true) }
func (h *Handler) Unpublish(c *gin.Context) { h.setPublished(c, false) }

func (h *Handler) setPublished(c *gin.Context, published bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid course ID")
		return
	}

	course, err := h.service.SetPublished(c.Request.Context(), actorFrom(c), id, published)
	if err != nil {
		h.writeError(c, err, "Failed to change publish state")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"course": toCourseView(course)})
}

func (h *Handler) UploadCover(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid course ID")
		return
	}

	fh, err := c.FormFile("cover")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cover image file is required")
		return
	}

	actor := actorFrom(c)
	path, err := h.files.Save(c.Request.Context(), fmt.Sprintf("courses/%d", actor.ID), fh)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	course, err := h.service.SetCover(c.Request.Context(), actor, id, path)
	if err != nil {
		h.writeError(c, err, "Failed to set cover image")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"course":    toCourseView(course),
		"cover_url": h.files.URL(path),
	})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrRoundTimeRequired),
		errors.Is(err, ErrRoundTimeOrder),
		errors.Is(err, ErrInvalidDay),
		errors.Is(err, ErrInvalidTime),
		errors.Is(err, ErrUnknownRound),
		errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Trainer role required")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Course not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func actorFrom(c *gin.Context) domain.Actor {
	return domain.Actor{
		ID:   c.GetInt64("user_id"),
		Role: domain.UserRole(c.GetString("role")),
	}
}
