package usecase

import (
	"fmt"

	"yoga-booking/internal/cart"
	"yoga-booking/internal/dto/request"
	"yoga-booking/internal/dto/response"
	"yoga-booking/pkg/utils"

	"go.uber.org/zap"
)

type CartService interface {
	GetCart(cartID string) response.CartResponse
	AddToCart(cartID string, req *request.AddToCartRequest) (*response.CartResponse, error)
	RemoveFromCart(cartID, classID string) (*response.CartResponse, error)
	UpdateQuantity(cartID, classID string, req *request.UpdateQuantityRequest) (*response.CartResponse, error)
	ClearCart(cartID string) (*response.CartResponse, error)
	SetEmail(cartID string, req *request.SetCartEmailRequest) (*response.CartResponse, error)
}

type cartService struct {
	carts *cart.Store
	log   *zap.Logger
}

func NewCartService(carts *cart.Store, log *zap.Logger) CartService {
	return &cartService{
		carts: carts,
		log:   log,
	}
}

func (s *cartService) GetCart(cartID string) response.CartResponse {
	agg := s.carts.Aggregate(cartID)
	return response.CartToResponse(agg)
}

func (s *cartService) AddToCart(cartID string, req *request.AddToCartRequest) (*response.CartResponse, error) {
	// 1. Validate input; a class without price data is rejected here,
	//    not inside the aggregate.
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("AddToCart validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Apply to aggregate
	agg := s.carts.Aggregate(cartID)
	agg.AddToCart(cart.ClassSnapshot{
		ID:              req.ClassID,
		Date:            req.Date,
		Teacher:         req.Teacher,
		Title:           req.Title,
		Description:     req.Description,
		CourseID:        req.CourseID,
		CourseType:      req.CourseType,
		CourseDay:       req.CourseDay,
		CourseTime:      req.CourseTime,
		CourseDuration:  req.CourseDuration,
		CoursePrice:     req.CoursePrice,
		CourseIntensity: req.CourseIntensity,
	})

	// 3. Persist before reporting success
	if err := s.carts.Save(agg); err != nil {
		return nil, fmt.Errorf("failed to save cart")
	}

	s.log.Info("Class added to cart",
		zap.String("cart_id", cartID),
		zap.String("class_id", req.ClassID))

	resp := response.CartToResponse(agg)
	return &resp, nil
}

func (s *cartService) RemoveFromCart(cartID, classID string) (*response.CartResponse, error) {
	agg := s.carts.Aggregate(cartID)
	agg.RemoveFromCart(classID)

	if err := s.carts.Save(agg); err != nil {
		return nil, fmt.Errorf("failed to save cart")
	}

	resp := response.CartToResponse(agg)
	return &resp, nil
}

func (s *cartService) UpdateQuantity(cartID, classID string, req *request.UpdateQuantityRequest) (*response.CartResponse, error) {
	agg := s.carts.Aggregate(cartID)
	agg.UpdateQuantity(classID, req.Quantity)

	if err := s.carts.Save(agg); err != nil {
		return nil, fmt.Errorf("failed to save cart")
	}

	resp := response.CartToResponse(agg)
	return &resp, nil
}

func (s *cartService) ClearCart(cartID string) (*response.CartResponse, error) {
	agg := s.carts.Aggregate(cartID)
	agg.ClearCart()

	if err := s.carts.Save(agg); err != nil {
		return nil, fmt.Errorf("failed to save cart")
	}

	s.log.Info("Cart cleared", zap.String("cart_id", cartID))

	resp := response.CartToResponse(agg)
	return &resp, nil
}

func (s *cartService) SetEmail(cartID string, req *request.SetCartEmailRequest) (*response.CartResponse, error) {
	agg := s.carts.Aggregate(cartID)
	agg.SetUserEmail(req.Email)

	if err := s.carts.Save(agg); err != nil {
		return nil, fmt.Errorf("failed to save cart")
	}

	resp := response.CartToResponse(agg)
	return &resp, nil
}
