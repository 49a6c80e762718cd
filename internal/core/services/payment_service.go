package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
)

// PaymentService builds hosted payment page sessions. The gateway's payment
// state machine is entirely external; the only handle this system holds is
// the token embedded in the iframe URL.
type PaymentService struct {
	gatewayBaseURL string
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(gatewayBaseURL string) *PaymentService {
	return &PaymentService{gatewayBaseURL: gatewayBaseURL}
}

// CreateSession mints a fresh token for the order and constructs the hosted
// payment page URL the browser is redirected into.
func (s *PaymentService) CreateSession(_ context.Context, orderID string) (*domain.PaymentSession, error) {
	token := uuid.NewString()
	return &domain.PaymentSession{
		OrderID:   orderID,
		Token:     token,
		IframeURL: fmt.Sprintf("%s/odeme/guvenli/%s", s.gatewayBaseURL, token),
	}, nil
}
