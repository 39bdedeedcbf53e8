package repository

import (
	"context"
	"errors"

	"github.com/CongThang213/MovieHub/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			UPDATE payments
			SET status = 'completed', payment_date = NOW(), updated_at = NOW()
			WHERE stripe_checkout_session_id = $1
			RETURNING id
		`

		err := tx.QueryRow(ctx, query, booking.CheckoutSessionID).Scan(&booking.PaymentID)
		if err != nil {
			return err
		}

		query = `
			INSERT INTO bookings (user_id, showtime_id, payment_id)
			VALUES ($1, $2, $3)
			RETURNING id
		`

		err = tx.QueryRow(
			ctx,
			query,
			booking.UserID,
			booking.ShowtimeID,
			booking.PaymentID).Scan(&booking.ID)

		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(booking.BookingSeats))
		for _, seat := range booking.BookingSeats {
			rows = append(rows, []any{
				booking.ID,
				booking.ShowtimeID,
				seat.SeatID,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"booking_seats"},
			[]string{"booking_id", "showtime_id", "seat_id"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrSeatConflict
		}

		return err
	}

	return nil
}

func (p *PostgresBookingRepository) GetSeatsByShowtimeId(
	ctx context.Context,
	showtimeId int) ([]domain.BookingSeat, error) {

	query := `
		SELECT booking_id, showtime_id, seat_id
		FROM booking_seats
		WHERE showtime_id = $1
	`

	rows, err := p.db.Query(ctx, query, showtimeId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookingSeats := make([]domain.BookingSeat, 0)

	for rows.Next() {
		var bookingSeat domain.BookingSeat

		err = rows.Scan(
			&bookingSeat.BookingID,
			&bookingSeat.ShowtimeID,
			&bookingSeat.SeatID,
		)

		if err != nil {
			return nil, err
		}

		bookingSeats = append(bookingSeats, bookingSeat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookingSeats, nil
}

func (p *PostgresBookingRepository) GetBookingSummariesByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			b.id,
			m.title,
			m.poster_url,
			s.start_time,
			t.name,
			h.name,
			b.created_at
		FROM bookings b
		JOIN showtimes s ON b.showtime_id = s.id
		JOIN movies m ON s.movie_id = m.id
		JOIN halls h ON s.hall_id = h.id
		JOIN theaters t ON h.theater_id = t.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userId, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	bookings := make([]domain.BookingSummary, 0)
	totalRecords := 0

	for rows.Next() {
		var booking domain.BookingSummary

		err := rows.Scan(
			&totalRecords,
			&booking.BookingID,
			&booking.MovieTitle,
			&booking.MoviePosterUrl,
			&booking.ShowtimeDate,
			&booking.TheaterName,
			&booking.HallName,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return bookings, metadata, nil
}

func (p *PostgresBookingRepository) GetByBookingIdAndUserId(
	ctx context.Context,
	bookingId,
	userId int) (*domain.BookingDetail, error) {

	query := `
		SELECT
			b.id,
			m.title,
			m.poster_url,
			s.start_time,
			t.name,
			h.name,
			b.created_at,
			p.amount,
			h.id,
			t.id
		FROM bookings b
		JOIN payments p ON b.payment_id = p.id
		JOIN showtimes s ON b.showtime_id = s.id
		JOIN movies m ON s.movie_id = m.id
		JOIN halls h ON s.hall_id = h.id
		JOIN theaters t ON h.theater_id = t.id
		WHERE b.id = $1 AND b.user_id = $2
	`

	var bookingDetail domain.BookingDetail
	var theaterId int
	var hallId int

	err := p.db.QueryRow(ctx, query, bookingId, userId).Scan(
		&bookingDetail.BookingID,
		&bookingDetail.MovieTitle,
		&bookingDetail.MoviePosterUrl,
		&bookingDetail.ShowtimeDate,
		&bookingDetail.TheaterName,
		&bookingDetail.HallName,
		&bookingDetail.CreatedAt,
		&bookingDetail.TotalPrice,
		&hallId,
		&theaterId,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	bookingSeats, err := p.retrieveBookingSeats(ctx, bookingId)
	if err != nil {
		return nil, err
	}

	theaterAmenities, err := p.retrieveTheaterAmenities(ctx, theaterId)
	if err != nil {
		return nil, err
	}

	hallAmenities, err := p.retrieveHallAmenities(ctx, hallId)
	if err != nil {
		return nil, err
	}

	bookingDetail.Seats = bookingSeats
	bookingDetail.TheaterAmenities = theaterAmenities
	bookingDetail.HallAmenities = hallAmenities

	return &bookingDetail, nil
}

func (p *PostgresBookingRepository) retrieveTheaterAmenities(
	ctx context.Context, theaterId int) ([]domain.Amenity, error) {

	query := `
		SELECT a.id, a.name, a.description
		FROM amenities a
		JOIN theater_amenities ta
			ON a.id = ta.amenity_id AND ta.theater_id = $1
	`

	return p.retrieveAmenities(ctx, query, theaterId)
}

func (p *PostgresBookingRepository) retrieveHallAmenities(
	ctx context.Context, hallId int) ([]domain.Amenity, error) {

	query := `
		SELECT a.id, a.name, a.description
		FROM amenities a
		JOIN hall_amenities ha
			ON a.id = ha.amenity_id AND ha.hall_id = $1
	`

	return p.retrieveAmenities(ctx, query, hallId)
}

func (p *PostgresBookingRepository) retrieveAmenities(
	ctx context.Context, query string, ownerId int) ([]domain.Amenity, error) {

	rows, err := p.db.Query(ctx, query, ownerId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	amenities := make([]domain.Amenity, 0)

	for rows.Next() {
		var amenity domain.Amenity

		err := rows.Scan(&amenity.ID, &amenity.Name, &amenity.Description)
		if err != nil {
			return nil, err
		}

		amenities = append(amenities, amenity)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return amenities, nil
}

func (p *PostgresBookingRepository) retrieveBookingSeats(
	ctx context.Context,
	bookingId int) ([]domain.BookingDetailSeat, error) {

	query := `
		SELECT s.seat_row, s.seat_col, s.seat_type
		FROM booking_seats bs
		JOIN seats s ON bs.seat_id = s.id
		WHERE booking_id = $1
	`

	rows, err := p.db.Query(ctx, query, bookingId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookingSeats := make([]domain.BookingDetailSeat, 0)

	for rows.Next() {
		var bookingSeat domain.BookingDetailSeat

		err := rows.Scan(
			&bookingSeat.Row,
			&bookingSeat.Col,
			&bookingSeat.Type,
		)

		if err != nil {
			return nil, err
		}

		bookingSeats = append(bookingSeats, bookingSeat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookingSeats, nil
}
