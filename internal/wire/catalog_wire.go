package wire

import (
	"yoga-booking/internal/adaptor"
	"yoga-booking/internal/data/repository"
	"yoga-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// The whole catalog is browsable without an account.
	r.Get("/api/courses", catalogHandler.GetCourses)
	r.Get("/api/courses/{courseID}/classes", catalogHandler.GetClasses)
	r.Get("/api/classes/search", catalogHandler.SearchClasses)
}
