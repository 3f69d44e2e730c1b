package domain

import (
	"errors"
)

var (
	MessageSuccessPlaceOrder   = "order placed successfully"
	MessageFailedPlaceOrder    = "failed to place order"
	MessageSuccessGetHistory   = "order history retrieved successfully"
	MessageFailedGetHistory    = "failed to retrieve order history"
	MessageSuccessGetFavorites = "favorite dishes retrieved successfully"
	MessageFailedGetFavorites  = "failed to retrieve favorite dishes"

	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("item quantity must be positive")
	ErrInvalidPrice    = errors.New("item price must not be negative")
	ErrTotalMismatch   = errors.New("total amount does not match item prices")
)

type (
	OrderItemRequest struct {
		Name                string  `json:"name" validate:"required"`
		Quantity            int     `json:"quantity" validate:"required,min=1"`
		Price               float64 `json:"price" validate:"min=0"`
		SpecialInstructions string  `json:"special_instructions"`
	}

	CustomerRequest struct {
		Name  string `json:"name" validate:"required"`
		Phone string `json:"phone" validate:"required"`
		Email string `json:"email" validate:"omitempty,email"`
	}

	// PlaceOrderRequest is a draft order: no id, status, or timestamp yet.
	// TotalAmount is optional; when present it must agree with the items,
	// which is why nil rather than zero marks it absent.
	PlaceOrderRequest struct {
		RestaurantID    string             `json:"restaurant_id" validate:"required"`
		RestaurantName  string             `json:"restaurant_name" validate:"required"`
		Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
		DeliveryAddress string             `json:"delivery_address" validate:"required"`
		Customer        CustomerRequest    `json:"customer" validate:"required"`
		PaymentMethod   string             `json:"payment_method" validate:"required"`
		TotalAmount     *float64           `json:"total_amount" validate:"omitempty,min=0"`
	}

	FavoritesResponse struct {
		Favorites []string `json:"favorites"`
	}
)
