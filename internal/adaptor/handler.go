package adaptor

import (
	"yoga-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Catalog *CatalogHandler
	Cart    *CartHandler
	Booking *BookingHandler
	Chat    *ChatHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
		Cart:    NewCartHandler(service.Cart, log),
		Booking: NewBookingHandler(service.Booking, log),
		Chat:    NewChatHandler(service.Chat, log),
	}
}
