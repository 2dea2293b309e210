package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"yoga-booking/internal/data/entity"
	"yoga-booking/internal/data/repository"
	"yoga-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sentinel filter values meaning "no filter".
const (
	FilterAllDays  = "All Days"
	FilterAllTimes = "All Times"
)

// Time-of-day buckets, by start hour of the course.
const (
	TimeMorning   = "Morning"   // 06:00 - 11:59
	TimeAfternoon = "Afternoon" // 12:00 - 16:59
	TimeEvening   = "Evening"   // 17:00 - 23:59
)

type CatalogService interface {
	GetCourses(ctx context.Context) ([]response.CourseResponse, error)
	GetClassesForCourse(ctx context.Context, courseID string) ([]response.ClassResponse, error)
	SearchClasses(ctx context.Context, day, timeCategory string) ([]response.ClassResponse, error)
}

type catalogService struct {
	repo *repository.Repository // grouping courseRepo & classRepo
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log,
	}
}

func (s *catalogService) GetCourses(ctx context.Context) ([]response.CourseResponse, error) {
	courses, err := s.repo.Course.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list courses", zap.Error(err))
		return nil, fmt.Errorf("failed to list courses")
	}

	result := make([]response.CourseResponse, len(courses))
	for i, course := range courses {
		result[i] = response.CourseToResponse(course)
	}
	return result, nil
}

func (s *catalogService) GetClassesForCourse(ctx context.Context, courseID string) ([]response.ClassResponse, error) {
	// 1. Parse course ID
	id, err := uuid.Parse(courseID)
	if err != nil {
		return nil, fmt.Errorf("invalid course ID")
	}

	// 2. Check course exists
	course, err := s.repo.Course.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find course", zap.Error(err), zap.String("course_id", courseID))
		return nil, fmt.Errorf("failed to find course")
	}
	if course == nil {
		return nil, fmt.Errorf("course not found")
	}

	// 3. Load classes
	classes, err := s.repo.Class.FindByCourseID(ctx, id)
	if err != nil {
		s.log.Error("Failed to list classes", zap.Error(err), zap.String("course_id", courseID))
		return nil, fmt.Errorf("failed to list classes")
	}

	result := make([]response.ClassResponse, len(classes))
	for i, class := range classes {
		result[i] = response.DenormalizedClassToResponse(class, course)
	}
	return result, nil
}

// SearchClasses returns every scheduled class whose parent course matches
// both filters. Day matching is exact and case-sensitive; the sentinel
// values select everything. Courses whose classes fail to load are skipped
// so one broken course does not empty the whole result.
func (s *catalogService) SearchClasses(ctx context.Context, day, timeCategory string) ([]response.ClassResponse, error) {
	courses, err := s.repo.Course.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list courses for search", zap.Error(err))
		return nil, fmt.Errorf("failed to search classes")
	}

	result := make([]response.ClassResponse, 0)
	for _, course := range courses {
		if !matchesDay(course, day) || !matchesTimeCategory(course, timeCategory) {
			continue
		}

		classes, err := s.repo.Class.FindByCourseID(ctx, course.ID)
		if err != nil {
			s.log.Warn("Skipping course in search, classes unavailable",
				zap.Error(err),
				zap.String("course_id", course.ID.String()))
			continue
		}

		for _, class := range classes {
			result = append(result, response.DenormalizedClassToResponse(class, course))
		}
	}

	return result, nil
}

func matchesDay(course *entity.Course, day string) bool {
	if day == "" || day == FilterAllDays {
		return true
	}
	return course.Day == day
}

func matchesTimeCategory(course *entity.Course, timeCategory string) bool {
	if timeCategory == "" || timeCategory == FilterAllTimes {
		return true
	}

	hour, ok := startHour(course.Time)
	if !ok {
		return false
	}

	switch timeCategory {
	case TimeMorning:
		return hour >= 6 && hour < 12
	case TimeAfternoon:
		return hour >= 12 && hour < 17
	case TimeEvening:
		return hour >= 17 && hour < 24
	default:
		return false
	}
}

// startHour extracts the hour from a "HH:MM" course time.
func startHour(courseTime string) (int, bool) {
	parts := strings.SplitN(courseTime, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	return hour, true
}
