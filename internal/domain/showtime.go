package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CleaningBuffer is the gap kept free after every screening before the
// next one may start in the same hall.
const CleaningBuffer = 15 * time.Minute

type Showtime struct {
	ID        int
	MovieID   int
	HallID    int
	StartTime time.Time
	// EndTime is derived from the movie duration plus CleaningBuffer and
	// backs the hall overlap constraint.
	EndTime   time.Time
	BasePrice decimal.Decimal
	CreatedAt time.Time
	Version   int
}

type ShowtimeRepository interface {
	GetById(ctx context.Context, id int) (*Showtime, error)
	Create(ctx context.Context, showtime *Showtime) error
	Update(ctx context.Context, showtime *Showtime) error
	Delete(ctx context.Context, id int) error
}
