package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Booking struct {
	ID                int
	UserID            int
	ShowtimeID        int
	CheckoutSessionID string
	PaymentID         int
	BookingSeats      []BookingSeat
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type BookingSeat struct {
	BookingID  int
	ShowtimeID int
	SeatID     int
}

type BookingSummary struct {
	BookingID      int
	MovieTitle     string
	MoviePosterUrl string
	ShowtimeDate   time.Time
	TheaterName    string
	HallName       string
	CreatedAt      time.Time
}

type BookingDetail struct {
	BookingID        int
	MovieTitle       string
	MoviePosterUrl   string
	ShowtimeDate     time.Time
	TheaterName      string
	HallName         string
	CreatedAt        time.Time
	TotalPrice       decimal.Decimal
	Seats            []BookingDetailSeat
	TheaterAmenities []Amenity
	HallAmenities    []Amenity
}

type BookingDetailSeat struct {
	Row  int
	Col  int
	Type string
}

type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetSeatsByShowtimeId(ctx context.Context, showtimeId int) ([]BookingSeat, error)
	GetBookingSummariesByUserId(ctx context.Context, userId int, pagination Pagination) ([]BookingSummary, *Metadata, error)
	GetByBookingIdAndUserId(ctx context.Context, bookingId, userId int) (*BookingDetail, error)
}
