package mocks

import (
	"context"
	"sync"

	"github.com/CongThang213/MovieHub/internal/domain"
)

type MockEventPublisher struct {
	mu        sync.Mutex
	published []domain.BookingConfirmed

	PublishBookingConfirmedFunc func(ctx context.Context, event domain.BookingConfirmed) error
}

func (m *MockEventPublisher) PublishBookingConfirmed(ctx context.Context, event domain.BookingConfirmed) error {
	if m.PublishBookingConfirmedFunc != nil {
		return m.PublishBookingConfirmedFunc(ctx, event)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, event)

	return nil
}

func (m *MockEventPublisher) PublishedEvents() []domain.BookingConfirmed {
	m.mu.Lock()
	defer m.mu.Unlock()

	events := make([]domain.BookingConfirmed, len(m.published))
	copy(events, m.published)

	return events
}
