package application

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

// FileStore saves an uploaded blob and returns its stable reference path.
type FileStore interface {
	Save(ctx context.Context, subdir string, fh *multipart.FileHeader) (string, error)
}

type Handler struct {
	service *Service
	files   FileStore
}

func NewHandler(service *Service, files FileStore) *Handler {
	return &Handler{service: service, files: files}
}

// RegisterRoutes mounts the applicant-side endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/applications", h.Submit)
	rg.GET("/applications/me", h.Latest)
}

// RegisterAdminRoutes mounts the review queue endpoints.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/applications", h.List)
	rg.POST("/admin/applications/:id/review", h.Review)
	rg.POST("/admin/applications/bulk-review", h.BulkReview)
}

// Submit accepts a multipart form: the application fields plus an optional
// single "certificate" file.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid application fields")
		return
	}

	actor := actorFrom(c)

	certPath := ""
	if fh, err := c.FormFile("certificate"); err == nil && fh != nil {
		path, err := h.files.Save(c.Request.Context(), fmt.Sprintf("trainer_certs/user_%d", actor.ID), fh)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		certPath = path
	}

	a, err := h.service.Submit(c.Request.Context(), actor, req, certPath)
	if err != nil {
		h.writeError(c, err, "Failed to submit application")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"application": a})
}

func (h *Handler) Latest(c *gin.Context) {
	a, err := h.service.Latest(c.Request.Context(), actorFrom(c))
	if err != nil {
		h.writeError(c, err, "Failed to load application")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"application": a})
}

func (h *Handler) Review(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid application ID")
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Decision must be approved or rejected")
		return
	}

	a, err := h.service.Review(c.Request.Context(), actorFrom(c), id, req.Decision)
	if err != nil {
		h.writeError(c, err, "Failed to review application")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"application": a})
}

func (h *Handler) BulkReview(c *gin.Context) {
	var req BulkReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid bulk review request")
		return
	}

	count, err := h.service.BulkReview(c.Request.Context(), actorFrom(c), req.IDs, req.Decision)
	if err != nil {
		h.writeError(c, err, "Failed to review applications")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviewed": count})
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	apps, total, err := h.service.List(c.Request.Context(), actorFrom(c), c.Query("status"), page, limit)
	if err != nil {
		h.writeError(c, err, "Failed to list applications")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"applications": apps,
		"total":        total,
	})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not allowed")
	case errors.Is(err, ErrAlreadyApplied), errors.Is(err, ErrStateConflict):
		response.Error(c, http.StatusConflict, "STATE_CONFLICT", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Application not found")
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
