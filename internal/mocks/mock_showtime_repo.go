package mocks

import (
	"context"

	"github.com/CongThang213/MovieHub/internal/domain"
)

type MockShowtimeRepo struct {
	GetByIdFunc func(ctx context.Context, id int) (*domain.Showtime, error)
	CreateFunc  func(ctx context.Context, showtime *domain.Showtime) error
	UpdateFunc  func(ctx context.Context, showtime *domain.Showtime) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockShowtimeRepo) GetById(ctx context.Context, id int) (*domain.Showtime, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockShowtimeRepo) Create(ctx context.Context, showtime *domain.Showtime) error {
	return m.CreateFunc(ctx, showtime)
}

func (m *MockShowtimeRepo) Update(ctx context.Context, showtime *domain.Showtime) error {
	return m.UpdateFunc(ctx, showtime)
}

func (m *MockShowtimeRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
