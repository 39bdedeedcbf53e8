package payment

import (
	"github.com/CongThang213/MovieHub/internal/domain"
	"github.com/stripe/stripe-go/v82"
)

type MockPaymentProvider struct {
	CreateCheckoutSessionFunc func(sessionId string, user *domain.User, cart domain.Cart, payment domain.Payment) (*stripe.CheckoutSession, error)
}

func NewMockPaymentProvider() *MockPaymentProvider {
	return &MockPaymentProvider{}
}

func (m *MockPaymentProvider) CreateCheckoutSession(
	sessionId string,
	user *domain.User,
	cart domain.Cart,
	payment domain.Payment) (*stripe.CheckoutSession, error) {

	if m.CreateCheckoutSessionFunc != nil {
		return m.CreateCheckoutSessionFunc(sessionId, user, cart, payment)
	}

	return &stripe.CheckoutSession{ID: "cs_test_mock", URL: "https://checkout.stripe.com/pay/cs_test_mock"}, nil
}
