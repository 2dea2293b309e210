package repository

import (
	"context"
	"fmt"

	"yoga-booking/internal/data/entity"
	"yoga-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CourseRepository interface {
	FindAll(ctx context.Context) ([]*entity.Course, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error)
}

type courseRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCourseRepository(db database.PgxIface, log *zap.Logger) CourseRepository {
	return &courseRepository{
		db:  db,
		log: log.With(zap.String("repository", "course")),
	}
}

func (r *courseRepository) FindAll(ctx context.Context) ([]*entity.Course, error) {
	query := `
		SELECT id, day, time, duration, intensity, capacity, price, description, type
		FROM courses
		ORDER BY day, time
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find courses", zap.Error(err))
		return nil, fmt.Errorf("find courses: %w", err)
	}
	defer rows.Close()

	var courses []*entity.Course
	for rows.Next() {
		var course entity.Course
		err := rows.Scan(
			&course.ID,
			&course.Day,
			&course.Time,
			&course.Duration,
			&course.Intensity,
			&course.Capacity,
			&course.Price,
			&course.Description,
			&course.Type,
		)
		if err != nil {
			r.log.Error("Failed to scan course row", zap.Error(err))
			return nil, fmt.Errorf("scan course row: %w", err)
		}
		courses = append(courses, &course)
	}

	return courses, nil
}

func (r *courseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	query := `
		SELECT id, day, time, duration, intensity, capacity, price, description, type
		FROM courses
		WHERE id = $1
	`

	var course entity.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Day,
		&course.Time,
		&course.Duration,
		&course.Intensity,
		&course.Capacity,
		&course.Price,
		&course.Description,
		&course.Type,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find course by ID",
			zap.Error(err),
			zap.String("course_id", id.String()),
		)
		return nil, fmt.Errorf("find course by ID %s: %w", id.String(), err)
	}

	return &course, nil
}
