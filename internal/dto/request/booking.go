package request

// CheckoutRequest submits the current cart as a booking. The address is
// checked syntactically by the service before any store call.
type CheckoutRequest struct {
	Email string `json:"email" validate:"required"`
}
