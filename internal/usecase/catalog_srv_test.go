package usecase

import (
	"context"
	"errors"
	"testing"

	"yoga-booking/internal/data/entity"
	"yoga-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockCourseRepository is a mock implementation of CourseRepository
type MockCourseRepository struct {
	FindAllFunc  func(ctx context.Context) ([]*entity.Course, error)
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.Course, error)
}

func (m *MockCourseRepository) FindAll(ctx context.Context) ([]*entity.Course, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []*entity.Course{}, nil
}

func (m *MockCourseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

// MockClassRepository is a mock implementation of ClassRepository
type MockClassRepository struct {
	FindByCourseIDFunc func(ctx context.Context, courseID uuid.UUID) ([]*entity.Class, error)
}

func (m *MockClassRepository) FindByCourseID(ctx context.Context, courseID uuid.UUID) ([]*entity.Class, error) {
	if m.FindByCourseIDFunc != nil {
		return m.FindByCourseIDFunc(ctx, courseID)
	}
	return []*entity.Class{}, nil
}

func course(id uuid.UUID, day, timeOfDay string) *entity.Course {
	return &entity.Course{
		ID:    id,
		Day:   day,
		Time:  timeOfDay,
		Price: 15,
		Type:  "Vinyasa",
	}
}

func classesFor(courseID uuid.UUID, dates ...string) []*entity.Class {
	out := make([]*entity.Class, len(dates))
	for i, date := range dates {
		out[i] = &entity.Class{ID: date, CourseID: courseID, Date: date}
	}
	return out
}

func newCatalogService(courses *MockCourseRepository, classes *MockClassRepository) CatalogService {
	repo := &repository.Repository{Course: courses, Class: classes}
	return NewCatalogService(repo, zap.NewNop())
}

func TestCatalogService_SearchClasses_Filters(t *testing.T) {
	mondayMorning := uuid.New()
	mondayEvening := uuid.New()
	fridayNoon := uuid.New()

	courses := &MockCourseRepository{
		FindAllFunc: func(ctx context.Context) ([]*entity.Course, error) {
			return []*entity.Course{
				course(mondayMorning, "Monday", "08:00"),
				course(mondayEvening, "Monday", "18:30"),
				course(fridayNoon, "Friday", "12:00"),
			}, nil
		},
	}
	classes := &MockClassRepository{
		FindByCourseIDFunc: func(ctx context.Context, courseID uuid.UUID) ([]*entity.Class, error) {
			return classesFor(courseID, "2026-09-01"), nil
		},
	}
	service := newCatalogService(courses, classes)

	tests := []struct {
		name         string
		day          string
		timeCategory string
		wantCourses  []uuid.UUID
	}{
		{
			name:        "day and time narrow to one course",
			day:         "Monday",
			timeCategory: TimeMorning,
			wantCourses: []uuid.UUID{mondayMorning},
		},
		{
			name:        "sentinels select everything",
			day:         FilterAllDays,
			timeCategory: FilterAllTimes,
			wantCourses: []uuid.UUID{mondayMorning, mondayEvening, fridayNoon},
		},
		{
			name:        "empty filters select everything",
			wantCourses: []uuid.UUID{mondayMorning, mondayEvening, fridayNoon},
		},
		{
			name:        "day match is case-sensitive",
			day:         "monday",
			wantCourses: nil,
		},
		{
			name:         "afternoon bucket starts at noon",
			timeCategory: TimeAfternoon,
			wantCourses:  []uuid.UUID{fridayNoon},
		},
		{
			name:         "evening bucket starts at 17",
			timeCategory: TimeEvening,
			wantCourses:  []uuid.UUID{mondayEvening},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.SearchClasses(context.Background(), tt.day, tt.timeCategory)
			require.NoError(t, err)

			got := make([]string, len(result))
			for i, class := range result {
				got[i] = class.CourseID
			}

			want := make([]string, len(tt.wantCourses))
			for i, id := range tt.wantCourses {
				want[i] = id.String()
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestCatalogService_SearchClasses_DenormalizesCourseFields(t *testing.T) {
	courseID := uuid.New()
	courses := &MockCourseRepository{
		FindAllFunc: func(ctx context.Context) ([]*entity.Course, error) {
			return []*entity.Course{course(courseID, "Monday", "08:00")}, nil
		},
	}
	classes := &MockClassRepository{
		FindByCourseIDFunc: func(ctx context.Context, id uuid.UUID) ([]*entity.Class, error) {
			return classesFor(id, "2026-09-01"), nil
		},
	}
	service := newCatalogService(courses, classes)

	result, err := service.SearchClasses(context.Background(), "Monday", "")
	require.NoError(t, err)
	require.Len(t, result, 1)

	assert.Equal(t, "Monday", result[0].CourseDay)
	assert.Equal(t, "08:00", result[0].CourseTime)
	assert.Equal(t, "Vinyasa", result[0].CourseType)
	require.NotNil(t, result[0].CoursePrice)
	assert.InDelta(t, 15.0, *result[0].CoursePrice, 1e-9)
}

func TestCatalogService_SearchClasses_SkipsCourseWhoseClassesFail(t *testing.T) {
	brokenID := uuid.New()
	healthyID := uuid.New()

	courses := &MockCourseRepository{
		FindAllFunc: func(ctx context.Context) ([]*entity.Course, error) {
			return []*entity.Course{
				course(brokenID, "Monday", "08:00"),
				course(healthyID, "Monday", "09:00"),
			}, nil
		},
	}
	classes := &MockClassRepository{
		FindByCourseIDFunc: func(ctx context.Context, courseID uuid.UUID) ([]*entity.Class, error) {
			if courseID == brokenID {
				return nil, errors.New("connection refused")
			}
			return classesFor(courseID, "2026-09-01"), nil
		},
	}
	service := newCatalogService(courses, classes)

	result, err := service.SearchClasses(context.Background(), "Monday", TimeMorning)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, healthyID.String(), result[0].CourseID)
}

func TestCatalogService_SearchClasses_UnparsableTimeExcludedFromTimeFilter(t *testing.T) {
	oddID := uuid.New()
	courses := &MockCourseRepository{
		FindAllFunc: func(ctx context.Context) ([]*entity.Course, error) {
			return []*entity.Course{course(oddID, "Monday", "soon")}, nil
		},
	}
	classes := &MockClassRepository{}
	service := newCatalogService(courses, classes)

	result, err := service.SearchClasses(context.Background(), "", TimeMorning)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestCatalogService_GetClassesForCourse_NotFound(t *testing.T) {
	courses := &MockCourseRepository{}
	classes := &MockClassRepository{}
	service := newCatalogService(courses, classes)

	_, err := service.GetClassesForCourse(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
