package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Theater struct {
	ID        int
	Name      string
	Address   string
	City      string
	District  string
	Distance  float64
	Amenities []Amenity
	Halls     []Hall
}

type Amenity struct {
	ID          int
	Name        string
	Description string
}

type Hall struct {
	ID        int
	TheaterID int
	Name      string
	Amenities []Amenity
	Showtimes []ShowtimeSummary
}

// ShowtimeSummary is the slim showtime projection embedded in theater
// listings. The full entity lives in showtime.go.
type ShowtimeSummary struct {
	ID        int
	StartTime time.Time
	BasePrice decimal.Decimal
}

type TheaterRepository interface {
	GetTheatersByMovieAndLocationAndDate(
		ctx context.Context,
		movieID int,
		date time.Time,
		lat, long float64,
		pagination Pagination,
	) ([]Theater, *Metadata, error)
}
