package repository

import (
	"context"

	"github.com/CongThang213/MovieHub/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatRepository(db *pgxpool.Pool) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

func (p *PostgresSeatRepository) GetSeatsByShowtime(ctx context.Context, showtimeID int) (*domain.ShowtimeSeats, error) {
	query := `
		SELECT
			t.id AS theater_id,
			t.name AS theater_name,
			m.title AS movie_name,
			h.id AS hall_id,
			h.name AS hall_name,
			sh.start_time,
			sh.base_price,
			se.id AS seat_id,
			se.seat_row,
			se.seat_col,
			se.seat_type,
			se.extra_price
		FROM showtimes sh
		JOIN movies m
			ON sh.movie_id = m.id
		JOIN seats se
			ON sh.hall_id = se.hall_id
		JOIN halls h
			ON sh.hall_id = h.id
		JOIN theaters t
			ON h.theater_id = t.id
		WHERE sh.id = $1
		ORDER BY se.seat_row, se.seat_col
	`

	rows, err := p.db.Query(ctx, query, showtimeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var showtimeSeats domain.ShowtimeSeats

	for rows.Next() {
		var seat domain.Seat

		err = rows.Scan(
			&showtimeSeats.TheaterID,
			&showtimeSeats.TheaterName,
			&showtimeSeats.MovieName,
			&showtimeSeats.HallID,
			&showtimeSeats.HallName,
			&showtimeSeats.Date,
			&showtimeSeats.BasePrice,
			&seat.ID,
			&seat.Row,
			&seat.Col,
			&seat.Type,
			&seat.ExtraPrice,
		)
		if err != nil {
			return nil, err
		}

		showtimeSeats.Seats = append(showtimeSeats.Seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(showtimeSeats.Seats) == 0 {
		return nil, domain.ErrRecordNotFound
	}

	return &showtimeSeats, nil
}

func (p *PostgresSeatRepository) GetSeatsByShowtimeAndSeatIds(
	ctx context.Context,
	showtimeID int,
	seatIDs []int) (*domain.ShowtimeSeats, error) {

	query := `
		SELECT
			t.id AS theater_id,
			t.name AS theater_name,
			m.title AS movie_name,
			h.id AS hall_id,
			h.name AS hall_name,
			sh.start_time,
			sh.base_price,
			se.id AS seat_id,
			se.seat_row,
			se.seat_col,
			se.seat_type,
			se.extra_price
		FROM showtimes sh
		JOIN movies m
			ON sh.movie_id = m.id
		JOIN seats se
			ON sh.hall_id = se.hall_id
		JOIN halls h
			ON sh.hall_id = h.id
		JOIN theaters t
			ON h.theater_id = t.id
		WHERE sh.id = $1 AND se.id = ANY($2)
		ORDER BY se.seat_row, se.seat_col
	`

	rows, err := p.db.Query(ctx, query, showtimeID, seatIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var showtimeSeats domain.ShowtimeSeats

	for rows.Next() {
		var seat domain.Seat

		err = rows.Scan(
			&showtimeSeats.TheaterID,
			&showtimeSeats.TheaterName,
			&showtimeSeats.MovieName,
			&showtimeSeats.HallID,
			&showtimeSeats.HallName,
			&showtimeSeats.Date,
			&showtimeSeats.BasePrice,
			&seat.ID,
			&seat.Row,
			&seat.Col,
			&seat.Type,
			&seat.ExtraPrice,
		)
		if err != nil {
			return nil, err
		}

		showtimeSeats.Seats = append(showtimeSeats.Seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(showtimeSeats.Seats) != len(seatIDs) {
		return nil, domain.ErrRecordNotFound
	}

	return &showtimeSeats, nil
}
