package gateway

import (
	"context"
	"net/http"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/atiq9se/bistro-boss-server/internal/pkg/apperror"
)

// Intent is the gateway-side object for an in-progress charge. The
// client secret is handed to the frontend to complete payment.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
}

//go:generate mockgen -source=stripe_service.go -destination=../mock/gateway/gateway_service_mock.go -package=mock
type Service interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (*Intent, error)
}

type stripeService struct {
	client *client.API
}

func NewStripeService(secretKey string) Service {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &stripeService{client: sc}
}

// CreateIntent asks Stripe for a card payment intent. Gateway failures
// are propagated verbatim; the gateway is the source of truth for
// whether money moved, so there is nothing sensible to retry here.
func (s *stripeService) CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinorUnits),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := s.client.PaymentIntents.New(params)
	if err != nil {
		return nil, apperror.New(
			apperror.CodeGatewayError,
			err.Error(),
			http.StatusBadGateway,
		).WithCause(err)
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}
