package response

import (
	"time"

	"yoga-booking/internal/cart"
)

type CartItemResponse struct {
	ID        string        `json:"id"`
	ClassData ClassResponse `json:"class_data"`
	Quantity  int           `json:"quantity"`
	AddedAt   string        `json:"added_at"` // ISO-8601
}

type CartResponse struct {
	ID         string             `json:"id"`
	Items      []CartItemResponse `json:"items"`
	UserEmail  string             `json:"user_email"`
	TotalPrice float64            `json:"total_price"`
	TotalItems int                `json:"total_items"`
}

// Helper converters
func CartItemToResponse(item cart.Item) CartItemResponse {
	return CartItemResponse{
		ID: item.ID,
		ClassData: ClassResponse{
			ID:              item.ClassData.ID,
			Date:            item.ClassData.Date,
			Teacher:         item.ClassData.Teacher,
			Title:           item.ClassData.Title,
			Description:     item.ClassData.Description,
			CourseID:        item.ClassData.CourseID,
			CourseType:      item.ClassData.CourseType,
			CourseDay:       item.ClassData.CourseDay,
			CourseTime:      item.ClassData.CourseTime,
			CourseDuration:  item.ClassData.CourseDuration,
			CoursePrice:     item.ClassData.CoursePrice,
			CourseIntensity: item.ClassData.CourseIntensity,
		},
		Quantity: item.Quantity,
		AddedAt:  item.AddedAt.Format(time.RFC3339),
	}
}

func CartToResponse(agg *cart.Aggregate) CartResponse {
	items := agg.Items()
	itemResponses := make([]CartItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = CartItemToResponse(item)
	}

	return CartResponse{
		ID:         agg.ID(),
		Items:      itemResponses,
		UserEmail:  agg.UserEmail(),
		TotalPrice: agg.TotalPrice(),
		TotalItems: agg.TotalItems(),
	}
}
