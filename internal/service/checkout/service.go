package checkout

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"vibe-commerce/internal/domain"
	orderrepo "vibe-commerce/internal/repository/order"
	"github.com/google/uuid"
)

const confirmationMessage = "Thank you for your order!"

type Service struct {
	orders    orderRepo
	carts     cartClearer
	publisher publisher
	logger    *log.Logger
}

type orderRepo interface {
	Create(ctx context.Context, order domain.Order) (*domain.Order, error)
}

type cartClearer interface {
	Clear(ctx context.Context, userID string) error
}

// publisher emits order-placed events. A nil publisher disables emission.
type publisher interface {
	OrderPlaced(ctx context.Context, order domain.Order) error
}

func New(orders orderrepo.Repository, carts cartClearer, pub publisher, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{orders: orders, carts: carts, publisher: pub, logger: logger}
}

type Input struct {
	CustomerName  string
	CustomerEmail string
	Items         []domain.OrderItem
}

// Checkout persists an immutable order from the submitted item snapshot and
// empties the user's cart. The total is computed from the submitted items,
// not re-fetched from the live cart or catalog.
func (s *Service) Checkout(ctx context.Context, userID string, in Input) (*domain.Receipt, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.CustomerName) == "" || strings.TrimSpace(in.CustomerEmail) == "" {
		return nil, fmt.Errorf("%w: customer name and email are required", domain.ErrInvalidInput)
	}

	var total int64
	for _, item := range in.Items {
		total += item.TotalCents
	}

	order, err := s.orders.Create(ctx, domain.Order{
		OrderRef:      newOrderRef(),
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Items:         in.Items,
		TotalCents:    total,
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err := s.carts.Clear(ctx, userID); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	if s.publisher != nil {
		// Best effort: the order is already committed and the receipt is
		// owed to the caller.
		if err := s.publisher.OrderPlaced(ctx, *order); err != nil {
			s.logger.Printf("checkout: publish order %s: %v", order.OrderRef, err)
		}
	}

	return &domain.Receipt{
		OrderID:       order.OrderRef,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		Items:         order.Items,
		TotalCents:    order.TotalCents,
		Timestamp:     order.CreatedAt,
		Message:       confirmationMessage,
	}, nil
}

// newOrderRef builds an order reference unique under normal operation:
// fixed prefix, millisecond timestamp, random suffix.
func newOrderRef() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:9]
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
