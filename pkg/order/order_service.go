package order

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"platefinder/domain"
	"platefinder/entities"
	"platefinder/internal/monitoring"
	"platefinder/pkg/store"
)

type (
	OrderService interface {
		PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (entities.Order, error)
		GetOrderHistory(ctx context.Context) ([]entities.Order, error)
		GetFavorites(ctx context.Context, limit int) ([]string, error)
	}

	orderService struct {
		slots        store.SlotStore
		confirmDelay time.Duration
	}
)

func NewOrderService(slots store.SlotStore, confirmDelay time.Duration) OrderService {
	return &orderService{
		slots:        slots,
		confirmDelay: confirmDelay,
	}
}

// PlaceOrder validates the draft, simulates the confirmation delay, assigns
// id/status/timestamp and appends the completed order to history. There is no
// idempotency key: submitting the same draft twice creates two records.
func (s *orderService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (entities.Order, error) {
	if len(req.Items) == 0 {
		return entities.Order{}, domain.ErrEmptyOrder
	}

	total := 0.0
	items := make([]entities.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return entities.Order{}, domain.ErrInvalidQuantity
		}
		if item.Price < 0 {
			return entities.Order{}, domain.ErrInvalidPrice
		}
		total += item.Price * float64(item.Quantity)
		items = append(items, entities.OrderItem{
			Name:                item.Name,
			Quantity:            item.Quantity,
			Price:               item.Price,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	// The server recomputes the total; a client-supplied total only has to
	// agree when present.
	if req.TotalAmount != nil && math.Abs(*req.TotalAmount-total) > 1e-9 {
		return entities.Order{}, domain.ErrTotalMismatch
	}

	// Simulated fulfillment: the order always confirms after a fixed delay.
	if s.confirmDelay > 0 {
		select {
		case <-time.After(s.confirmDelay):
		case <-ctx.Done():
			return entities.Order{}, ctx.Err()
		}
	}

	completed := entities.Order{
		ID:              uuid.New().String(),
		RestaurantID:    req.RestaurantID,
		RestaurantName:  req.RestaurantName,
		Items:           items,
		DeliveryAddress: req.DeliveryAddress,
		Customer: entities.Customer{
			Name:  req.Customer.Name,
			Phone: req.Customer.Phone,
			Email: req.Customer.Email,
		},
		PaymentMethod: req.PaymentMethod,
		TotalAmount:   total,
		Status:        entities.OrderStatusConfirmed,
		CreatedAt:     time.Now(),
	}

	// The append runs inside the store's update so a concurrent placement
	// cannot overwrite it with a stale history.
	err := s.slots.Update(ctx, store.SlotOrderHistory, func(current string, ok bool) (string, error) {
		history := append(decodeHistory(current, ok), completed)
		value, err := json.Marshal(history)
		if err != nil {
			return "", err
		}
		return string(value), nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	monitoring.OrdersPlaced.Inc()
	return completed, nil
}

func (s *orderService) GetOrderHistory(ctx context.Context) ([]entities.Order, error) {
	return s.loadHistory(ctx), nil
}

// GetFavorites counts item-name occurrences across the whole history and
// returns the top names by count. Ties are broken by the order in which a
// name first appears, oldest order first, so the result is deterministic.
func (s *orderService) GetFavorites(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 5
	}

	history := s.loadHistory(ctx)

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	names := make([]string, 0)
	for _, order := range history {
		for _, item := range order.Items {
			if _, ok := counts[item.Name]; !ok {
				firstSeen[item.Name] = len(names)
				names = append(names, item.Name)
			}
			counts[item.Name]++
		}
	}

	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return firstSeen[names[i]] < firstSeen[names[j]]
	})

	if len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func (s *orderService) loadHistory(ctx context.Context) []entities.Order {
	value, ok, err := s.slots.Get(ctx, store.SlotOrderHistory)
	if err != nil {
		log.Printf("Error reading order history slot: %v", err)
		return []entities.Order{}
	}
	return decodeHistory(value, ok)
}

func decodeHistory(value string, ok bool) []entities.Order {
	if !ok {
		return []entities.Order{}
	}

	var history []entities.Order
	if err := json.Unmarshal([]byte(value), &history); err != nil {
		log.Printf("Error decoding order history slot, using defaults: %v", err)
		return []entities.Order{}
	}
	return history
}
