package entity

import (
	"github.com/google/uuid"
)

// Class is a scheduled instance of a course. Its ID equals the scheduled
// date string by convention, unique within the parent course.
type Class struct {
	ID          string    `db:"id"`
	CourseID    uuid.UUID `db:"course_id"`
	Date        string    `db:"date"`
	Teacher     string    `db:"teacher"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
}
