package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/CongThang213/MovieHub/api"
	"github.com/CongThang213/MovieHub/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	DefaultSort     = "id"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request, params api.GetMoviesParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := toMovieFilters(params)

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	movieSummaries := toMovieSummaries(movies)
	apiMetadata := toApiMetadata(metadata)

	resp := api.MovieListResponse{
		Movies:   movieSummaries,
		Metadata: apiMetadata,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieById(w http.ResponseWriter, r *http.Request, movieID int) {
	if movieID < 1 {
		app.notFoundResponse(w, r)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.MovieDetailResponse{
		Id:          movie.ID,
		Name:        movie.Title,
		Description: movie.Description,
		Genres:      movie.Genres,
		Language:    movie.Language,
		ReleaseDate: types.Date{Time: movie.ReleaseDate},
		Duration:    movie.Duration,
		PosterUrl:   movie.PosterUrl,
		Director:    movie.Director,
		Cast:        movie.CastMembers,
	}

	if movie.Rating.Valid {
		if rating, err := movie.Rating.Float64Value(); err == nil && rating.Valid {
			resp.Rating = &rating.Float64
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieRequest

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

	movie := domain.Movie{
		Title:       input.Name,
		Description: input.Description,
		Genres:      input.Genres,
		Language:    input.Language,
		ReleaseDate: input.ReleaseDate.Time,
		Duration:    input.Duration,
		PosterUrl:   input.PosterUrl,
		Director:    input.Director,
		CastMembers: input.Cast,
	}

	err = app.movieRepo.Create(r.Context(), &movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toMovieResponse(&movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request, movieID int) {
	logger := app.contextGetLogger(r)

	if movieID < 1 {
		app.notFoundResponse(w, r)
		return
	}

	var input api.UpdateMovieRequest

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

	movie, err := app.movieRepo.GetById(r.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	applyMovieUpdates(movie, input)

	err = app.movieRepo.Update(r.Context(), movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEditConflict):
			logger.Warn("movie update lost optimistic lock race", "movie_id", movieID)
			app.editConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request, movieID int) {
	logger := app.contextGetLogger(r)

	if movieID < 1 {
		app.notFoundResponse(w, r)
		return
	}

	err := app.movieRepo.Delete(r.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrMovieInUse):
			logger.Warn("movie deletion rejected: upcoming showtimes exist", "movie_id", movieID)
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func applyMovieUpdates(movie *domain.Movie, input api.UpdateMovieRequest) {
	if input.Name != nil {
		movie.Title = *input.Name
	}
	if input.Description != nil {
		movie.Description = *input.Description
	}
	if input.Genres != nil {
		movie.Genres = *input.Genres
	}
	if input.Language != nil {
		movie.Language = *input.Language
	}
	if input.ReleaseDate != nil {
		movie.ReleaseDate = input.ReleaseDate.Time
	}
	if input.Duration != nil {
		movie.Duration = *input.Duration
	}
	if input.PosterUrl != nil {
		movie.PosterUrl = *input.PosterUrl
	}
	if input.Director != nil {
		movie.Director = *input.Director
	}
	if input.Cast != nil {
		movie.CastMembers = *input.Cast
	}
}

func toMovieResponse(movie *domain.Movie) api.MovieResponse {
	return api.MovieResponse{
		Id:          movie.ID,
		Name:        movie.Title,
		Description: movie.Description,
		Genres:      movie.Genres,
		Language:    movie.Language,
		ReleaseDate: types.Date{Time: movie.ReleaseDate},
		Duration:    movie.Duration,
		PosterUrl:   movie.PosterUrl,
		Director:    movie.Director,
		Cast:        movie.CastMembers,
		Version:     movie.Version,
	}
}

func toMovieFilters(params api.GetMoviesParams) domain.MovieFilters {
	filters := domain.MovieFilters{
		Pagination: domain.Pagination{
			Page:     DefaultPage,
			PageSize: DefaultPageSize,
			Sort:     DefaultSort,
		},
	}

	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.PageSize != nil {
		filters.PageSize = *params.PageSize
	}
	if params.Sort != nil {
		filters.Sort = *params.Sort
	}
	if params.Term != nil {
		filters.Term = *params.Term
	}

	return filters
}

func toMovieSummaries(movies []*domain.Movie) []api.MovieSummary {
	summaries := make([]api.MovieSummary, len(movies))
	today := time.Now().Truncate(24 * time.Hour)

	for i, movie := range movies {
		summary := toMovieSummary(movie)

		if movie.ReleaseDate.After(today) {
			summary.Status = api.COMINGSOON
		} else {
			summary.Status = api.NOWSHOWING
		}

		summaries[i] = summary
	}

	return summaries
}

func toMovieSummary(movie *domain.Movie) api.MovieSummary {
	if movie == nil {
		return api.MovieSummary{}
	}

	return api.MovieSummary{
		Id:          movie.ID,
		Name:        movie.Title,
		Description: movie.Description,
		PosterUrl:   movie.PosterUrl,
		ReleaseDate: types.Date{Time: movie.ReleaseDate},
	}
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
