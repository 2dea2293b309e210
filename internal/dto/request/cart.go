package request

// AddToCartRequest carries the class snapshot selected in the catalog.
// The course price must already be denormalized onto the class; a class
// without price data cannot be added to the cart.
type AddToCartRequest struct {
	ClassID         string   `json:"class_id" validate:"required"`
	Date            string   `json:"date" validate:"required"`
	Teacher         string   `json:"teacher"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	CourseID        string   `json:"course_id,omitempty" validate:"omitempty,uuid4"`
	CourseType      string   `json:"course_type,omitempty"`
	CourseDay       string   `json:"course_day,omitempty"`
	CourseTime      string   `json:"course_time,omitempty"`
	CourseDuration  int      `json:"course_duration,omitempty"`
	CoursePrice     *float64 `json:"course_price" validate:"required"`
	CourseIntensity string   `json:"course_intensity,omitempty"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type SetCartEmailRequest struct {
	Email string `json:"email"`
}
