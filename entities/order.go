package entities

import (
	"time"
)

// Order is one completed order as stored in the "orderHistory" slot. Orders
// are appended once and never mutated afterwards.
type Order struct {
	ID              string      `json:"id"`
	RestaurantID    string      `json:"restaurant_id"`
	RestaurantName  string      `json:"restaurant_name"`
	Items           []OrderItem `json:"items"`
	DeliveryAddress string      `json:"delivery_address"`
	Customer        Customer    `json:"customer"`
	PaymentMethod   string      `json:"payment_method"`
	TotalAmount     float64     `json:"total_amount"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
}

type OrderItem struct {
	Name                string  `json:"name"`
	Quantity            int     `json:"quantity"`
	Price               float64 `json:"price"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
}

type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
)
