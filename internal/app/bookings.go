package app

import (
	"errors"
	"net/http"

	"github.com/CongThang213/MovieHub/api"
	"github.com/CongThang213/MovieHub/internal/domain"
)

func (app *Application) GetBookingsOfUser(
	w http.ResponseWriter,
	r *http.Request,
	params api.GetBookingsOfUserParams) {

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)
	pagination := toPagination(params)

	bookings, metadata, err := app.bookingRepo.GetBookingSummariesByUserId(r.Context(), userId, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	bookingSummaries := toBookingSummaries(bookings)
	apiMetadata := toApiMetadata(metadata)
	resp := api.UserBookingsResponse{
		Bookings: bookingSummaries,
		Metadata: *apiMetadata,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetUserBookingById(w http.ResponseWriter, r *http.Request, bookingId int) {
	if bookingId < 1 {
		app.notFoundResponse(w, r)
		return
	}

	userId := app.contextGetUserId(r)

	bookingDetail, err := app.bookingRepo.GetByBookingIdAndUserId(r.Context(), bookingId, userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.BookingDetailResponse{
		Id:               bookingDetail.BookingID,
		MovieTitle:       bookingDetail.MovieTitle,
		MoviePosterUrl:   bookingDetail.MoviePosterUrl,
		Date:             bookingDetail.ShowtimeDate,
		TheaterName:      bookingDetail.TheaterName,
		HallName:         bookingDetail.HallName,
		CreatedAt:        bookingDetail.CreatedAt,
		TotalPrice:       bookingDetail.TotalPrice,
		Seats:            toApiBookingSeats(bookingDetail.Seats),
		TheaterAmenities: toApiAmenities(bookingDetail.TheaterAmenities),
		HallAmenities:    toApiAmenities(bookingDetail.HallAmenities),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toBookingSummaries(bookings []domain.BookingSummary) []api.BookingSummary {
	bookingSummaries := make([]api.BookingSummary, len(bookings))

	for i, v := range bookings {
		bookingSummary := &bookingSummaries[i]

		bookingSummary.Id = v.BookingID
		bookingSummary.MovieTitle = v.MovieTitle
		bookingSummary.MoviePosterUrl = v.MoviePosterUrl
		bookingSummary.HallName = v.HallName
		bookingSummary.TheaterName = v.TheaterName
		bookingSummary.Date = v.ShowtimeDate
		bookingSummary.CreatedAt = v.CreatedAt
	}

	return bookingSummaries
}

func toApiBookingSeats(seats []domain.BookingDetailSeat) []api.BookingSeat {
	apiSeats := make([]api.BookingSeat, len(seats))

	for i, v := range seats {
		apiSeats[i] = api.BookingSeat{
			Row:    v.Row,
			Column: v.Col,
			Type:   api.SeatType(v.Type),
		}
	}

	return apiSeats
}

func toPagination(params api.GetBookingsOfUserParams) domain.Pagination {
	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}

	if params.Page != nil {
		pagination.Page = *params.Page
	}
	if params.PageSize != nil {
		pagination.PageSize = *params.PageSize
	}

	return pagination
}
