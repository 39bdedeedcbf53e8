package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/CongThang213/MovieHub/api"
	"github.com/CongThang213/MovieHub/internal/domain"
)

func (app *Application) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateShowtimeRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	if input.StartTime.Before(time.Now()) {
		app.badRequestResponse(w, r, fmt.Errorf("start time must be in the future"))
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), input.MovieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("movie %d does not exist", input.MovieId))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	showtime := domain.Showtime{
		MovieID:   input.MovieId,
		HallID:    input.HallId,
		StartTime: input.StartTime,
		EndTime:   showtimeEndTime(input.StartTime, movie.Duration),
		BasePrice: input.BasePrice,
	}

	err = app.showtimeRepo.Create(r.Context(), &showtime)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrShowtimeOverlap):
			logger.Warn(
				"showtime creation rejected: hall already booked for that window",
				"hall_id", input.HallId,
				"start_time", input.StartTime,
			)
			app.editConflictResponseWithErr(w, r, err)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("hall %d does not exist", input.HallId))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toShowtimeResponse(&showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateShowtime(w http.ResponseWriter, r *http.Request, showtimeID int) {
	logger := app.contextGetLogger(r)

	if showtimeID < 1 {
		app.notFoundResponse(w, r)
		return
	}

	var input api.UpdateShowtimeRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	showtime, err := app.showtimeRepo.GetById(r.Context(), showtimeID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if input.StartTime != nil {
		if input.StartTime.Before(time.Now()) {
			app.badRequestResponse(w, r, fmt.Errorf("start time must be in the future"))
			return
		}

		movie, err := app.movieRepo.GetById(r.Context(), showtime.MovieID)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		showtime.StartTime = *input.StartTime
		showtime.EndTime = showtimeEndTime(*input.StartTime, movie.Duration)
	}

	if input.BasePrice != nil {
		showtime.BasePrice = *input.BasePrice
	}

	err = app.showtimeRepo.Update(r.Context(), showtime)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrShowtimeOverlap):
			logger.Warn(
				"showtime update rejected: hall already booked for that window",
				"showtime_id", showtimeID,
			)
			app.editConflictResponseWithErr(w, r, err)
		case errors.Is(err, domain.ErrEditConflict):
			app.editConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowtimeResponse(showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteShowtime(w http.ResponseWriter, r *http.Request, showtimeID int) {
	logger := app.contextGetLogger(r)

	if showtimeID < 1 {
		app.notFoundResponse(w, r)
		return
	}

	err := app.showtimeRepo.Delete(r.Context(), showtimeID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrShowtimeHasBookings):
			logger.Warn("showtime deletion rejected: bookings exist", "showtime_id", showtimeID)
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// showtimeEndTime pads the screening with the hall cleaning window, so the
// overlap constraint keeps back-to-back screenings apart.
func showtimeEndTime(start time.Time, durationMinutes int) time.Time {
	return start.Add(time.Duration(durationMinutes)*time.Minute + domain.CleaningBuffer)
}

func toShowtimeResponse(showtime *domain.Showtime) api.ShowtimeResponse {
	return api.ShowtimeResponse{
		Id:        showtime.ID,
		MovieId:   showtime.MovieID,
		HallId:    showtime.HallID,
		StartTime: showtime.StartTime,
		EndTime:   showtime.EndTime,
		BasePrice: showtime.BasePrice,
		Version:   showtime.Version,
	}
}
