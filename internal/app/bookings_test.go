package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/CongThang213/MovieHub/api"
	"github.com/CongThang213/MovieHub/internal/domain"
	"github.com/CongThang213/MovieHub/internal/mocks"
	"github.com/CongThang213/MovieHub/internal/validator"
	"github.com/alexedwards/scs/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BookingsTestSuite struct {
	suite.Suite
	app         *Application
	bookingRepo *mocks.MockBookingRepo
}

func (s *BookingsTestSuite) SetupTest() {
	s.bookingRepo = new(mocks.MockBookingRepo)
	s.app = newTestApplication(func(a *Application) {
		a.bookingRepo = s.bookingRepo
		a.sessionManager = scs.New()
	})
}

func TestBookingsSuite(t *testing.T) {
	suite.Run(t, new(BookingsTestSuite))
}

func (s *BookingsTestSuite) TestGetBookingsOfUser() {
	tests := []struct {
		name           string
		setupSession   bool
		userId         int
		params         api.GetBookingsOfUserParams
		setupMock      func()
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.UserBookingsResponse
	}{
		{
			name:         "invalid page number",
			setupSession: true,
			userId:       1,
			params: api.GetBookingsOfUserParams{
				Page:     ptr(0),
				PageSize: ptr(10),
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: fmt.Sprintf(validator.ErrMinValue, "1"),
		},
		{
			name:         "invalid page size",
			setupSession: true,
			userId:       1,
			params: api.GetBookingsOfUserParams{
				Page:     ptr(1),
				PageSize: ptr(0),
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: fmt.Sprintf(validator.ErrMinValue, "1"),
		},
		{
			name:           "no session",
			setupSession:   false,
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrUnauthorizedAccess,
		},
		{
			name:         "database error",
			setupSession: true,
			userId:       1,
			params: api.GetBookingsOfUserParams{
				Page:     ptr(1),
				PageSize: ptr(10),
			},
			setupMock: func() {
				s.bookingRepo.On("GetBookingSummariesByUserId", mock.Anything, 1, domain.Pagination{
					Page:     1,
					PageSize: 10,
				}).Return(nil, nil, fmt.Errorf("database error"))
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name:         "successful retrieval",
			setupSession: true,
			userId:       1,
			params: api.GetBookingsOfUserParams{
				Page:     ptr(1),
				PageSize: ptr(10),
			},
			setupMock: func() {
				s.bookingRepo.On("GetBookingSummariesByUserId", mock.Anything, 1, domain.Pagination{
					Page:     1,
					PageSize: 10,
				}).Return(
					[]domain.BookingSummary{
						{
							BookingID:      1,
							MovieTitle:     "The Matrix",
							MoviePosterUrl: "https://example.com/matrix.jpg",
							ShowtimeDate:   time.Date(2026, 3, 15, 19, 0, 0, 0, time.UTC),
							TheaterName:    "Cinema City",
							HallName:       "Hall 1",
							CreatedAt:      time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
						},
					},
					&domain.Metadata{
						CurrentPage:  1,
						PageSize:     10,
						FirstPage:    1,
						LastPage:     1,
						TotalRecords: 1,
					},
					nil,
				)
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.UserBookingsResponse{
				Bookings: []api.BookingSummary{
					{
						Id:             1,
						MovieTitle:     "The Matrix",
						MoviePosterUrl: "https://example.com/matrix.jpg",
						HallName:       "Hall 1",
						TheaterName:    "Cinema City",
						Date:           time.Date(2026, 3, 15, 19, 0, 0, 0, time.UTC),
						CreatedAt:      time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
					},
				},
				Metadata: api.Metadata{
					CurrentPage:  1,
					PageSize:     10,
					FirstPage:    1,
					LastPage:     1,
					TotalRecords: 1,
				},
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.bookingRepo.AssertExpectations(s.T())

			if tt.setupMock != nil {
				tt.setupMock()
			}

			w, r := executeRequest(s.T(), http.MethodGet, "/users/me/bookings", nil)

			if tt.setupSession {
				r = setupTestSession(s.T(), s.app, r, tt.userId)
			}

			q := r.URL.Query()
			if tt.params.Page != nil {
				q.Add("page", fmt.Sprintf("%d", *tt.params.Page))
			}
			if tt.params.PageSize != nil {
				q.Add("pageSize", fmt.Sprintf("%d", *tt.params.PageSize))
			}
			r.URL.RawQuery = q.Encode()

			handler := s.app.requireAuthentication(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				s.app.GetBookingsOfUser(w, r, tt.params)
			}))
			handler = s.app.sessionManager.LoadAndSave(handler)
			handler.ServeHTTP(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response api.UserBookingsResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				diff := cmp.Diff(tt.wantResponse, &response)
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func (s *BookingsTestSuite) TestGetUserBookingById() {
	tests := []struct {
		name           string
		bookingId      int
		setupMock      func()
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.BookingDetailResponse
	}{
		{
			name:           "invalid booking id",
			bookingId:      0,
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:      "booking not found",
			bookingId: 99,
			setupMock: func() {
				s.bookingRepo.On("GetByBookingIdAndUserId", mock.Anything, 99, 1).
					Return(nil, domain.ErrRecordNotFound)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:      "database error",
			bookingId: 1,
			setupMock: func() {
				s.bookingRepo.On("GetByBookingIdAndUserId", mock.Anything, 1, 1).
					Return(nil, fmt.Errorf("database error"))
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name:      "successful retrieval",
			bookingId: 1,
			setupMock: func() {
				s.bookingRepo.On("GetByBookingIdAndUserId", mock.Anything, 1, 1).
					Return(&domain.BookingDetail{
						BookingID:      1,
						MovieTitle:     "The Matrix",
						MoviePosterUrl: "https://example.com/matrix.jpg",
						ShowtimeDate:   time.Date(2026, 3, 15, 19, 0, 0, 0, time.UTC),
						TheaterName:    "Cinema City",
						HallName:       "Hall 1",
						CreatedAt:      time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
						TotalPrice:     decimal.NewFromFloat(65),
						Seats: []domain.BookingDetailSeat{
							{Row: 1, Col: 1, Type: "STANDARD"},
							{Row: 2, Col: 1, Type: "VIP"},
						},
						TheaterAmenities: []domain.Amenity{
							{ID: 1, Name: "Parking", Description: "Free parking lot"},
						},
						HallAmenities: []domain.Amenity{
							{ID: 2, Name: "IMAX", Description: "IMAX screen"},
						},
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.BookingDetailResponse{
				Id:             1,
				MovieTitle:     "The Matrix",
				MoviePosterUrl: "https://example.com/matrix.jpg",
				Date:           time.Date(2026, 3, 15, 19, 0, 0, 0, time.UTC),
				TheaterName:    "Cinema City",
				HallName:       "Hall 1",
				CreatedAt:      time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
				TotalPrice:     decimal.NewFromFloat(65),
				Seats: []api.BookingSeat{
					{Row: 1, Column: 1, Type: api.STANDARD},
					{Row: 2, Column: 1, Type: api.VIP},
				},
				TheaterAmenities: []api.Amenity{
					{Id: 1, Name: "Parking", Description: "Free parking lot"},
				},
				HallAmenities: []api.Amenity{
					{Id: 2, Name: "IMAX", Description: "IMAX screen"},
				},
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.bookingRepo.AssertExpectations(s.T())

			if tt.setupMock != nil {
				tt.setupMock()
			}

			w, r := executeRequest(s.T(), http.MethodGet, fmt.Sprintf("/users/me/bookings/%d", tt.bookingId), nil)
			r = setupTestSession(s.T(), s.app, r, 1)

			handler := s.app.requireAuthentication(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				s.app.GetUserBookingById(w, r, tt.bookingId)
			}))
			handler = s.app.sessionManager.LoadAndSave(handler)
			handler.ServeHTTP(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response api.BookingDetailResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				diff := cmp.Diff(tt.wantResponse, &response)
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}
