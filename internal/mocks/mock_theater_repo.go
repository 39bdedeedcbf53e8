package mocks

import (
	"context"
	"time"

	"github.com/CongThang213/MovieHub/internal/domain"
)

type MockTheaterRepo struct {
	GetTheatersByMovieAndLocationAndDateFunc func(
		context.Context,
		int,
		time.Time,
		float64,
		float64,
		domain.Pagination) ([]domain.Theater, *domain.Metadata, error)
}

func (m *MockTheaterRepo) GetTheatersByMovieAndLocationAndDate(
	ctx context.Context,
	movieID int,
	date time.Time,
	lat, long float64,
	pagination domain.Pagination) ([]domain.Theater, *domain.Metadata, error) {

	return m.GetTheatersByMovieAndLocationAndDateFunc(ctx, movieID, date, lat, long, pagination)
}
