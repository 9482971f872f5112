package payment

//go:generate go run go.uber.org/mock/mockgen -source=./payment.go -destination=./mocks/payment_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go"
	"github.com/stripe/stripe-go/paymentintent"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
)

var (
	ErrDisabled      = errors.New("payment authorization is disabled")
	ErrInvalidAmount = errors.New("authorization amount must be positive")
)

// Zero-decimal currencies are charged in whole units.
var zeroDecimalCurrencies = map[string]struct{}{
	"bif": {}, "clp": {}, "djf": {}, "gnf": {}, "jpy": {}, "kmf": {}, "krw": {}, "mga": {},
	"pyg": {}, "rwf": {}, "ugx": {}, "vnd": {}, "vuv": {}, "xaf": {}, "xof": {}, "xpf": {},
}

type AuthorizeRequest struct {
	ReservationID  string
	PropertyID     string
	Amount         decimal.Decimal
	Currency       string
	IdempotencyKey string
}

// StripeKey scopes the caller's key to the reservation. Empty keys stay empty.
func (r AuthorizeRequest) StripeKey() string {
	if r.IdempotencyKey == "" {
		return ""
	}

	return "extend-" + r.ReservationID + "-" + r.IdempotencyKey
}

type Authorization struct {
	Reference string
	Status    string
}

type Authorizer interface {
	Authorize(ctx context.Context, req AuthorizeRequest) (Authorization, error)
}

func New(cfg *config.Config, otel otel.Otel) Authorizer {
	if !cfg.Payment.Enabled || cfg.Payment.StripeKey == "" {
		log.Warn().Msg("Payment authorization disabled, extensions will be recorded as degraded")

		return disabled{}
	}

	return &stripeAuthorizer{
		client: paymentintent.Client{B: stripe.GetBackend(stripe.APIBackend), Key: cfg.Payment.StripeKey},
		otel:   otel,
	}
}

type disabled struct{}

func (disabled) Authorize(context.Context, AuthorizeRequest) (Authorization, error) {
	return Authorization{}, ErrDisabled
}

type stripeAuthorizer struct {
	client paymentintent.Client
	otel   otel.Otel
}

// Authorize places a manual-capture hold for the amount. Capture happens elsewhere.
func (s *stripeAuthorizer) Authorize(ctx context.Context, req AuthorizeRequest) (auth Authorization, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".stripe.Authorize")
	defer scope.End()
	defer scope.TraceIfError(&err)

	amount, err := MinorUnits(req.Amount, req.Currency)
	if err != nil {
		return Authorization{}, err
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amount),
		Currency:      stripe.String(strings.ToLower(req.Currency)),
		CaptureMethod: stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
	}
	params.Context = ctx
	params.AddMetadata("reservation_id", req.ReservationID)
	params.AddMetadata("property_id", req.PropertyID)

	if key := req.StripeKey(); key != "" {
		params.SetIdempotencyKey(key)
	}

	intent, err := s.client.New(params)
	if err != nil {
		log.Error().Err(err).Str("reservation_id", req.ReservationID).Msg("failed to create payment intent")

		return Authorization{}, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return Authorization{
		Reference: intent.ID,
		Status:    string(intent.Status),
	}, nil
}

// MinorUnits converts amount to the smallest currency unit, rounding half away from zero.
func MinorUnits(amount decimal.Decimal, currency string) (int64, error) {
	if !amount.IsPositive() {
		return 0, ErrInvalidAmount
	}

	if _, ok := zeroDecimalCurrencies[strings.ToLower(currency)]; ok {
		return amount.Round(0).IntPart(), nil
	}

	return amount.Shift(2).Round(0).IntPart(), nil
}
