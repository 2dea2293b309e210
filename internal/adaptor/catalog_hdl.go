package adaptor

import (
	"net/http"
	"strings"

	"yoga-booking/internal/usecase"
	"yoga-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

// GetCourses handles GET /api/courses
func (h *CatalogHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.GetCourses(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list courses")
		return
	}

	utils.ResponseSuccess(w, "Courses retrieved successfully", courses)
}

// GetClasses handles GET /api/courses/{courseID}/classes
func (h *CatalogHandler) GetClasses(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")
	if courseID == "" {
		utils.ResponseBadRequest(w, "Missing course ID", nil)
		return
	}

	classes, err := h.service.GetClassesForCourse(r.Context(), courseID)
	if err != nil {
		h.handleServiceError(w, err, "list classes")
		return
	}

	utils.ResponseSuccess(w, "Classes retrieved successfully", classes)
}

// SearchClasses handles GET /api/classes/search?day=&time_category=
func (h *CatalogHandler) SearchClasses(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")
	timeCategory := r.URL.Query().Get("time_category")

	classes, err := h.service.SearchClasses(r.Context(), day, timeCategory)
	if err != nil {
		h.handleServiceError(w, err, "search classes")
		return
	}

	utils.ResponseSuccess(w, "Classes retrieved successfully", classes)
}

// handleServiceError handles different types of errors
func (h *CatalogHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
