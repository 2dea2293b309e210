package usecase

import (
	"yoga-booking/internal/cart"
	"yoga-booking/internal/chat"
	"yoga-booking/internal/data/repository"
	"yoga-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Catalog CatalogService
	Cart    CartService
	Booking BookingService
	Chat    ChatService
}

func NewService(
	repo *repository.Repository,
	carts *cart.Store,
	relay *chat.Relay,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Catalog: NewCatalogService(repo, log),
		Cart:    NewCartService(carts, log),
		Booking: NewBookingService(repo, carts, log),
		Chat:    NewChatService(repo, relay, log),
	}
}
