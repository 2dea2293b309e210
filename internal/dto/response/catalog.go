package response

import (
	"yoga-booking/internal/data/entity"
)

type CourseResponse struct {
	ID          string  `json:"id"`
	Day         string  `json:"day"`
	Time        string  `json:"time"`
	Duration    int     `json:"duration"`
	Intensity   string  `json:"intensity"`
	Capacity    int     `json:"capacity"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
}

// ClassResponse carries a scheduled class; the course_* fields are filled
// only when the class was returned from a filtered search or otherwise
// enriched with its parent course.
type ClassResponse struct {
	ID              string   `json:"id"`
	Date            string   `json:"date"`
	Teacher         string   `json:"teacher"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	CourseID        string   `json:"course_id,omitempty"`
	CourseType      string   `json:"course_type,omitempty"`
	CourseDay       string   `json:"course_day,omitempty"`
	CourseTime      string   `json:"course_time,omitempty"`
	CourseDuration  int      `json:"course_duration,omitempty"`
	CoursePrice     *float64 `json:"course_price,omitempty"`
	CourseIntensity string   `json:"course_intensity,omitempty"`
}

// Helper converters
func CourseToResponse(course *entity.Course) CourseResponse {
	return CourseResponse{
		ID:          course.ID.String(),
		Day:         course.Day,
		Time:        course.Time,
		Duration:    course.Duration,
		Intensity:   course.Intensity,
		Capacity:    course.Capacity,
		Price:       course.Price,
		Description: course.Description,
		Type:        course.Type,
	}
}

func ClassToResponse(class *entity.Class) ClassResponse {
	return ClassResponse{
		ID:          class.ID,
		Date:        class.Date,
		Teacher:     class.Teacher,
		Title:       class.Title,
		Description: class.Description,
		CourseID:    class.CourseID.String(),
	}
}

// DenormalizedClassToResponse copies the parent course's fields onto the
// class so no second lookup is needed on the client.
func DenormalizedClassToResponse(class *entity.Class, course *entity.Course) ClassResponse {
	resp := ClassToResponse(class)
	price := course.Price
	resp.CourseType = course.Type
	resp.CourseDay = course.Day
	resp.CourseTime = course.Time
	resp.CourseDuration = course.Duration
	resp.CoursePrice = &price
	resp.CourseIntensity = course.Intensity
	return resp
}
