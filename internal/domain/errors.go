package domain

import "errors"

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrEditConflict        = errors.New("edit conflict")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrSeatAlreadyReserved = errors.New("seat(s) are already reserved")
	ErrCartNotFound        = errors.New("cart not found or has expired")
	ErrSeatLockExpired     = errors.New("your selections have expired, please select your seats again")
	ErrSeatConflict        = errors.New("seat(s) already booked for this showtime")
	ErrShowtimeOverlap     = errors.New("showtime overlaps with another showtime in the same hall")
	ErrMovieInUse          = errors.New("movie has scheduled showtimes")
	ErrShowtimeHasBookings = errors.New("showtime has confirmed bookings")
)
