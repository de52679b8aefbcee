package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"transportpro/internal/catalog"
	"transportpro/internal/model"
	"transportpro/internal/repository"
)

var (
	ErrPackageNotFound = errors.New("package not found")
	ErrMissingOrderID  = errors.New("missing order_id")
	ErrOrderNotFound   = errors.New("order not found")
)

const demoPackageID = "professional"

// Checkout is the result of a successfully initiated payment.
type Checkout struct {
	CheckoutURL string
	OrderID     string
}

type PaymentService interface {
	// CreateCheckout persists a pending order and requests a hosted checkout
	// URL from the gateway. The order stays pending forever if the gateway
	// call fails after the insert; there is no reconciliation job.
	CreateCheckout(ctx context.Context, user *model.User, packageID string) (*Checkout, error)
	// ProcessCallback applies a gateway-reported order status. Unknown
	// orders and missing ids surface as ErrMissingOrderID/ErrOrderNotFound,
	// which the webhook endpoint acknowledges softly rather than failing.
	ProcessCallback(ctx context.Context, orderID, orderStatus string) error
	// ActivateDemo grants a 30-day professional subscription without
	// payment. Test affordance, not production-hardened.
	ActivateDemo(ctx context.Context, userID string) (time.Time, error)
}

type paymentService struct {
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	fondy       FondyClient
	merchantID  int
	frontendURL string
	backendURL  string
	logger      zerolog.Logger
}

func NewPaymentService(orderRepo repository.OrderRepository, userRepo repository.UserRepository, fondy FondyClient, merchantID int, frontendURL, backendURL string, logger zerolog.Logger) PaymentService {
	return &paymentService{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		fondy:       fondy,
		merchantID:  merchantID,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		backendURL:  strings.TrimRight(backendURL, "/"),
		logger:      logger.With().Str("service", "PaymentService").Logger(),
	}
}

func newOrderID() string {
	hexID := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "order_" + hexID[:12]
}

func (s *paymentService) CreateCheckout(ctx context.Context, user *model.User, packageID string) (*Checkout, error) {
	pkg := catalog.Get(packageID)
	if pkg == nil {
		return nil, ErrPackageNotFound
	}

	orderID := newOrderID()
	params := map[string]interface{}{
		"order_id":            orderID,
		"merchant_id":         s.merchantID,
		"amount":              pkg.Price,
		"currency":            "UAH",
		"order_desc":          fmt.Sprintf("TransportPro - %s subscription", pkg.Name),
		"response_url":        s.frontendURL + "/payment/success",
		"server_callback_url": s.backendURL + "/api/payments/webhook",
	}

	order := &model.Order{
		ID:        orderID,
		UserID:    user.ID,
		PackageID: pkg.ID,
		Amount:    pkg.Price,
		Status:    model.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID).Msg("Failed to persist order")
		return nil, fmt.Errorf("create order: %w", err)
	}

	checkoutURL, err := s.fondy.CheckoutURL(ctx, params)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID).Msg("Checkout request failed")
		return nil, err
	}
	return &Checkout{CheckoutURL: checkoutURL, OrderID: orderID}, nil
}

func (s *paymentService) ProcessCallback(ctx context.Context, orderID, orderStatus string) error {
	if orderID == "" {
		return ErrMissingOrderID
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("fetch order %s: %w", orderID, err)
	}
	if order == nil {
		return ErrOrderNotFound
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, orderStatus, time.Now().UTC()); err != nil {
		return fmt.Errorf("update order %s: %w", orderID, err)
	}

	if orderStatus == model.OrderStatusApproved {
		pkg := catalog.Get(order.PackageID)
		if pkg == nil {
			s.logger.Warn().Str("order_id", orderID).Str("package_id", order.PackageID).Msg("Approved order references unknown package")
			return nil
		}
		// Expiry is recomputed from now on every approval; a replayed
		// callback therefore extends the subscription.
		expires := time.Now().UTC().Add(time.Duration(pkg.DurationDays) * 24 * time.Hour)
		if err := s.userRepo.ActivateSubscription(ctx, order.UserID, pkg.ID, expires); err != nil {
			return fmt.Errorf("activate subscription for user %s: %w", order.UserID, err)
		}
		s.logger.Info().Str("order_id", orderID).Str("user_id", order.UserID).Str("package_id", pkg.ID).Msg("Subscription activated")
	}
	return nil
}

func (s *paymentService) ActivateDemo(ctx context.Context, userID string) (time.Time, error) {
	expires := time.Now().UTC().Add(30 * 24 * time.Hour)
	if err := s.userRepo.ActivateSubscription(ctx, userID, demoPackageID, expires); err != nil {
		return time.Time{}, fmt.Errorf("activate demo subscription for user %s: %w", userID, err)
	}
	return expires, nil
}
