package repository

import (
	"context"
	"fmt"

	"yoga-booking/internal/data/entity"
	"yoga-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ClassRepository interface {
	FindByCourseID(ctx context.Context, courseID uuid.UUID) ([]*entity.Class, error)
}

type classRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClassRepository(db database.PgxIface, log *zap.Logger) ClassRepository {
	return &classRepository{
		db:  db,
		log: log.With(zap.String("repository", "class")),
	}
}

func (r *classRepository) FindByCourseID(ctx context.Context, courseID uuid.UUID) ([]*entity.Class, error) {
	query := `
		SELECT id, course_id, date, teacher, title, description
		FROM classes
		WHERE course_id = $1
		ORDER BY date
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		r.log.Error("Failed to find classes by course ID",
			zap.Error(err),
			zap.String("course_id", courseID.String()),
		)
		return nil, fmt.Errorf("find classes by course ID %s: %w", courseID.String(), err)
	}
	defer rows.Close()

	var classes []*entity.Class
	for rows.Next() {
		var class entity.Class
		err := rows.Scan(
			&class.ID,
			&class.CourseID,
			&class.Date,
			&class.Teacher,
			&class.Title,
			&class.Description,
		)
		if err != nil {
			r.log.Error("Failed to scan class row", zap.Error(err))
			return nil, fmt.Errorf("scan class row: %w", err)
		}
		classes = append(classes, &class)
	}

	return classes, nil
}
