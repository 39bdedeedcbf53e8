package app

import (
	"fmt"
	"net/http"

	"github.com/CongThang213/MovieHub/api"
	"github.com/CongThang213/MovieHub/internal/domain"
)

func (app *Application) GetTheatersByMovie(
	w http.ResponseWriter,
	r *http.Request,
	movieID int,
	params api.GetTheatersByMovieParams) {

	if movieID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("movie ID must be greater than zero"))
		return
	}

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

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

	theaters, metadata, err := app.theaterRepo.GetTheatersByMovieAndLocationAndDate(
		r.Context(),
		movieID,
		params.Date.Time,
		params.Latitude,
		params.Longitude,
		pagination,
	)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.TheaterListResponse{
		Theaters: toApiTheaters(theaters),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiTheaters(theaters []domain.Theater) []api.Theater {
	apiTheaters := make([]api.Theater, len(theaters))

	for i, t := range theaters {
		apiTheaters[i] = api.Theater{
			Id:        t.ID,
			Name:      t.Name,
			Address:   t.Address,
			City:      t.City,
			District:  t.District,
			Distance:  t.Distance,
			Amenities: toApiAmenities(t.Amenities),
			Halls:     toApiHalls(t.Halls),
		}
	}

	return apiTheaters
}

func toApiHalls(halls []domain.Hall) []api.Hall {
	apiHalls := make([]api.Hall, len(halls))

	for i, h := range halls {
		apiHalls[i] = api.Hall{
			Id:        h.ID,
			Name:      h.Name,
			Amenities: toApiAmenities(h.Amenities),
			Showtimes: toApiShowtimeSummaries(h.Showtimes),
		}
	}

	return apiHalls
}

func toApiShowtimeSummaries(showtimes []domain.ShowtimeSummary) []api.ShowtimeSummary {
	apiShowtimes := make([]api.ShowtimeSummary, len(showtimes))

	for i, s := range showtimes {
		apiShowtimes[i] = api.ShowtimeSummary{
			Id:        s.ID,
			StartTime: s.StartTime,
			BasePrice: s.BasePrice,
		}
	}

	return apiShowtimes
}

func toApiAmenities(amenities []domain.Amenity) []api.Amenity {
	if len(amenities) == 0 {
		return nil
	}

	apiAmenities := make([]api.Amenity, len(amenities))

	for i, a := range amenities {
		apiAmenities[i] = api.Amenity{
			Id:          a.ID,
			Name:        a.Name,
			Description: a.Description,
		}
	}

	return apiAmenities
}
