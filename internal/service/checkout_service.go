package service

import (
	"context"
	"errors"
	"fmt"
	"net"

	"audiophile/internal/events"
	"audiophile/internal/model"
	"audiophile/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// checkoutService implements CheckoutService. It owns the transaction
// boundary: customer, order and order items are committed together or not
// at all.
type checkoutService struct {
	checkoutRepo repository.CheckoutRepository
	publisher    events.Publisher
	logger       zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	checkoutRepo repository.CheckoutRepository,
	publisher events.Publisher,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		checkoutRepo: checkoutRepo,
		publisher:    publisher,
		logger:       logger.With().Str("service", "checkout").Logger(),
	}
}

// Checkout validates the request and persists the customer, the order and
// its line items inside a single transaction.
func (s *checkoutService) Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	// Validation happens before any store access.
	if err := s.validateCheckoutRequest(req); err != nil {
		return nil, err
	}

	// The total is computed server-side with exact decimal arithmetic;
	// no client-supplied total is consulted.
	total := computeTotal(req.Items)

	tx, err := s.checkoutRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin checkout transaction")
		return nil, storeError(err, "checkout could not be persisted")
	}

	// Roll back on any failure past this point. A rollback failure is
	// logged and swallowed: the original error is the actionable one, and
	// the store will reap the abandoned transaction.
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback checkout transaction")
			}
		}
	}()

	customer := &model.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		ZipCode: req.ZipCode,
		City:    req.City,
		Country: req.Country,
	}

	if err = s.checkoutRepo.CreateCustomer(ctx, tx, customer); err != nil {
		s.logger.Error().Err(err).Msg("failed to create customer")
		return nil, storeError(err, "checkout could not be persisted")
	}

	order := &model.Order{
		CustomerID:    customer.ID,
		Total:         total,
		PaymentMethod: req.PaymentMethod,
		EMoneyNumber:  req.EMoneyNumber,
		EMoneyPin:     req.EMoneyPin,
	}

	if err = s.checkoutRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().
			Err(err).
			Int64("customer_id", customer.ID).
			Msg("failed to create order")
		return nil, storeError(err, "checkout could not be persisted")
	}

	orderItems := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		orderItems[i] = model.OrderItem{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	if err = s.checkoutRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		s.logger.Error().
			Err(err).
			Int64("order_id", order.ID).
			Int("item_count", len(orderItems)).
			Msg("failed to create order items")
		return nil, storeError(err, "checkout could not be persisted")
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Int64("order_id", order.ID).Msg("failed to commit checkout transaction")
		return nil, storeError(err, "checkout could not be persisted")
	}

	s.logger.Info().
		Int64("order_id", order.ID).
		Int64("customer_id", customer.ID).
		Str("total", total.StringFixed(2)).
		Int("item_count", len(orderItems)).
		Msg("checkout completed")

	// The order is durable at this point. Event publishing is
	// best-effort and must not fail the checkout.
	event := events.OrderCreatedEvent{
		OrderID:    order.ID,
		CustomerID: customer.ID,
		Total:      total.StringFixed(2),
		ItemCount:  len(orderItems),
		CreatedAt:  order.CreatedAt,
	}
	if pubErr := s.publisher.PublishOrderCreated(ctx, event); pubErr != nil {
		s.logger.Warn().
			Err(pubErr).
			Int64("order_id", order.ID).
			Msg("failed to publish order created event")
	}

	return &model.CheckoutResponse{
		OrderID: order.ID,
		Message: "Checkout successful",
	}, nil
}

// GetOrderByID retrieves a persisted order with its items.
func (s *checkoutService) GetOrderByID(ctx context.Context, id int64) (*model.OrderResponse, error) {
	order, items, err := s.checkoutRepo.GetOrderByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to get order")
		return nil, storeError(err, "order could not be read")
	}

	if order == nil {
		s.logger.Debug().Int64("order_id", id).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	return &model.OrderResponse{
		Order: *order,
		Items: items,
	}, nil
}

// validateCheckoutRequest validates the checkout request.
func (s *checkoutService) validateCheckoutRequest(req *model.CheckoutRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "checkout request is nil")
	}

	required := []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"email", req.Email},
		{"phone", req.Phone},
		{"address", req.Address},
		{"zip_code", req.ZipCode},
		{"city", req.City},
		{"country", req.Country},
		{"payment_method", req.PaymentMethod},
	}
	for _, f := range required {
		if f.value == "" {
			return model.NewDomainError(model.ErrCodeMissingField, fmt.Sprintf("%s is required", f.name))
		}
	}

	if len(req.Items) == 0 {
		return model.ErrEmptyOrder
	}

	for i, item := range req.Items {
		if item.ProductID <= 0 {
			return model.NewDomainError(model.ErrCodeMissingField, fmt.Sprintf("item %d: product_id is required", i))
		}

		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Int64("product_id", item.ProductID).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}

		if item.Price.IsNegative() {
			s.logger.Warn().
				Int("item_index", i).
				Int64("product_id", item.ProductID).
				Str("price", item.Price.String()).
				Msg("invalid price")
			return model.ErrInvalidPrice
		}
	}

	return nil
}

// storeError classifies a failed store operation. An unreachable or
// interrupted connection is reported as a connection error; anything the
// store answered with is a persistence error. The caller sees a stable code
// and message, never driver detail.
func storeError(err error, message string) *model.DomainError {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return model.NewDomainError(model.ErrCodeConnection, "store connection interrupted")
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return model.NewDomainError(model.ErrCodeConnection, "store is unreachable")
	}

	return model.NewDomainError(model.ErrCodePersistence, message)
}

// computeTotal sums quantity times price over all items with exact decimal
// arithmetic.
func computeTotal(items []model.CheckoutItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		line := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}
