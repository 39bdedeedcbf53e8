package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// BookingConfirmed is published after a booking is committed so that
// slow side effects (ticket e-mail) stay off the webhook path.
type BookingConfirmed struct {
	BookingID    int             `json:"booking_id"`
	UserID       int             `json:"user_id"`
	Email        string          `json:"email"`
	FirstName    string          `json:"first_name"`
	MovieTitle   string          `json:"movie_title"`
	TheaterName  string          `json:"theater_name"`
	HallName     string          `json:"hall_name"`
	ShowtimeDate time.Time       `json:"showtime_date"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	Seats        []CartSeat      `json:"seats"`
	OccurredAt   time.Time       `json:"occurred_at"`
}

type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event BookingConfirmed) error
}
