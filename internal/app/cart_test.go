package app

import (
	"context"
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
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testShowtimeID = 1
	testBasePrice  = 50.0
	maxSeats       = 8

	cartID = "f4f4a1f0-53cc-4b05-9d0a-6a9f86f2f0b1"
)

var (
	testSeatIDs = []int{1, 2, 3}
	testSeats   = []domain.Seat{
		{ID: 1, Row: 1, Col: 1, Type: "STANDARD", ExtraPrice: 0},
		{ID: 2, Row: 1, Col: 2, Type: "VIP", ExtraPrice: 15},
		{ID: 3, Row: 1, Col: 3, Type: "RECLINER", ExtraPrice: 10},
	}

	cartDataStr = func() string {
		cart := domain.Cart{
			Id:         cartID,
			ShowtimeID: testShowtimeID,
			TotalPrice: decimal.NewFromFloat(75),
			BasePrice:  decimal.NewFromFloat(testBasePrice),
			MovieName:  "Inception",
			Seats: []domain.CartSeat{
				{Id: 1, Row: 1, Col: 1, SeatType: "STANDARD", ExtraPrice: decimal.NewFromFloat(0)},
			},
		}

		data, err := json.Marshal(cart)
		if err != nil {
			panic(err)
		}

		return string(data)
	}()
)

type CartTestSuite struct {
	suite.Suite
	app           *Application
	seatRepo      *mocks.MockSeatRepo
	bookingRepo   *mocks.MockBookingRepo
	redisClient   *mocks.MockRedisClient
	redisPipeline *mocks.MockTxPipeline
}

func (s *CartTestSuite) SetupTest() {
	s.seatRepo = &mocks.MockSeatRepo{}
	s.bookingRepo = new(mocks.MockBookingRepo)
	s.redisClient = new(mocks.MockRedisClient)
	s.redisPipeline = new(mocks.MockTxPipeline)

	s.app = newTestApplication(func(a *Application) {
		a.seatRepo = s.seatRepo
		a.bookingRepo = s.bookingRepo
		a.sessionManager = scs.New()
		a.redis = s.redisClient
	})
}

func TestCartSuite(t *testing.T) {
	suite.Run(t, new(CartTestSuite))
}

func (s *CartTestSuite) TestCreateCart() {
	noBookedSeats := func() {
		s.bookingRepo.On("GetSeatsByShowtimeId", mock.Anything, testShowtimeID).Return([]domain.BookingSeat{}, nil)
	}

	tests := []struct {
		name           string
		showtimeID     int
		input          api.CreateCartRequest
		seatsFunc      func(context.Context, int, []int) (*domain.ShowtimeSeats, error)
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.CartResponse
	}{
		{
			name:           "should fail when showtime ID is zero or negative",
			showtimeID:     0,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "showtime ID must be greater than zero",
		},
		{
			name:       "should fail when seat list is empty",
			showtimeID: testShowtimeID,
			input: api.CreateCartRequest{
				SeatIdList: []int{},
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: fmt.Sprintf(validator.ErrMinLength, "1"),
		},
		{
			name:       "should fail when seat count exceeds maximum limit of 8",
			showtimeID: testShowtimeID,
			input: api.CreateCartRequest{
				SeatIdList: []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: fmt.Sprintf(validator.ErrMaxLength, "8"),
		},
		{
			name:       "should fail when user already has an active cart",
			showtimeID: testShowtimeID,
			input: api.CreateCartRequest{
				SeatIdList: testSeatIDs,
			},
			setupMocks: func() {
				s.redisClient.On("Get", mock.Anything, mock.Anything).Return(redis.NewStringResult("existing-cart-id", nil))
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "cannot create new cart if a cart already exists in session",
		},
		{
			name:       "should fail when a selected seat is already booked",
			showtimeID: testShowtimeID,
			input: api.CreateCartRequest{
				SeatIdList: testSeatIDs,
			},
			setupMocks: func() {
				s.redisClient.On("Get", mock.Anything, mock.Anything).Return(redis.NewStringCmd(context.Background(), ""))
				s.bookingRepo.On("GetSeatsByShowtimeId", mock.Anything, testShowtimeID).Return([]domain.BookingSeat{
					{ShowtimeID: testShowtimeID, SeatID: 2},
				}, nil)
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: "some of the selected seats are already booked",
		},
		{
			name:       "should fail when database error occurs while fetching seats",
			showtimeID: testShowtimeID,
			input: api.CreateCartRequest{
				SeatIdList: testSeatIDs,
			},
			seatsFunc: func(ctx context.Context, showtimeID int, seatIDs []int) (*domain.ShowtimeSeats, error) {
				return nil, fmt.Errorf("database error")
			},
			setupMocks: func() {
				s.redisClient.On("Get", mock.Anything, mock.Anything).Return(redis.NewStringCmd(context.Background(), ""))
				noBookedSeats()
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name:       "should fail when requested seats are not available for showtime",
			showtimeID: testShowtimeID,
			input: api.CreateCartRequest{
				SeatIdList: testSeatIDs,
			},
			seatsFunc: func(ctx context.Context, showtimeID int, seatIDs []int) (*domain.ShowtimeSeats, error) {
				return nil, domain.ErrRecordNotFound
			},
			setupMocks: func() {
				s.redisClient.On("Get", mock.Anything, mock.Anything).Return(redis.NewStringCmd(context.Background(), ""))
				noBookedSeats()
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:       "should handle concurrent seat locking failures",
			showtimeID: testShowtimeID,
			input: api.CreateCartRequest{
				SeatIdList: testSeatIDs,
			},
			seatsFunc: func(ctx context.Context, showtimeID int, seatIDs []int) (*domain.ShowtimeSeats, error) {
				return &domain.ShowtimeSeats{Seats: testSeats, BasePrice: testBasePrice}, nil
			},
			setupMocks: func() {
				s.redisClient.On("Get", mock.Anything, mock.Anything).Return(redis.NewStringCmd(context.Background(), ""))
				noBookedSeats()
				s.redisClient.On("EvalSha", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(redis.NewCmdResult(nil, mocks.MockRedisError{Msg: "seat already locked"}))
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: "some of the selected seats are already reserved",
		},
		{
			name:       "should handle Redis pipeline execution failures during cart creation",
			showtimeID: testShowtimeID,
			input: api.CreateCartRequest{
				SeatIdList: testSeatIDs,
			},
			seatsFunc: func(ctx context.Context, showtimeID int, seatIDs []int) (*domain.ShowtimeSeats, error) {
				return &domain.ShowtimeSeats{Seats: testSeats, BasePrice: testBasePrice}, nil
			},
			setupMocks: func() {
				s.redisClient.On("Get", mock.Anything, mock.Anything).Return(redis.NewStringCmd(context.Background(), ""))
				noBookedSeats()
				s.redisClient.On("EvalSha", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(redis.NewCmdResult("OK", nil))

				// createCart pipeline fails, seat locks must be rolled back
				s.redisClient.On("TxPipeline").Return(s.redisPipeline)
				s.redisPipeline.On("SAdd", mock.Anything, mock.Anything, mock.Anything).Return(redis.NewIntCmd(context.Background(), 1))
				s.redisPipeline.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(redis.NewStatusCmd(context.Background(), "OK"))
				s.redisPipeline.On("Exec", mock.Anything).Return(nil, fmt.Errorf("redis pipeline execution failed")).Once()

				s.redisPipeline.On("Del", mock.Anything, mock.Anything).Return(redis.NewIntCmd(context.Background(), 1))
				s.redisPipeline.On("SRem", mock.Anything, mock.Anything, mock.Anything).Return(redis.NewIntCmd(context.Background(), 1))
				s.redisPipeline.On("Exec", mock.Anything).Return([]redis.Cmder{}, nil).Once()
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name:       "should successfully create cart with valid input",
			showtimeID: testShowtimeID,
			input: api.CreateCartRequest{
				SeatIdList: testSeatIDs,
			},
			seatsFunc: func(ctx context.Context, showtimeID int, seatIDs []int) (*domain.ShowtimeSeats, error) {
				return &domain.ShowtimeSeats{Seats: testSeats, BasePrice: testBasePrice}, nil
			},
			setupMocks: func() {
				s.redisClient.On("Get", mock.Anything, mock.Anything).Return(redis.NewStringCmd(context.Background(), ""))
				noBookedSeats()
				s.redisClient.On("EvalSha", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(redis.NewCmdResult("OK", nil))
				s.redisClient.On("TxPipeline").Return(s.redisPipeline)
				s.redisPipeline.On("SAdd", mock.Anything, mock.Anything, mock.Anything).Return(redis.NewIntCmd(context.Background(), 1))
				s.redisPipeline.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(redis.NewStatusCmd(context.Background(), "OK"))
				s.redisPipeline.On("Exec", mock.Anything).Return([]redis.Cmder{}, nil)
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.CartResponse{
				Cart: api.Cart{
					ShowtimeId: testShowtimeID,
					Seats: []api.CartSeat{
						{Id: 1, Row: 1, Column: 1, Type: api.STANDARD, Price: decimal.NewFromFloat(0)},
						{Id: 2, Row: 1, Column: 2, Type: api.VIP, Price: decimal.NewFromFloat(15)},
						{Id: 3, Row: 1, Column: 3, Type: api.RECLINER, Price: decimal.NewFromFloat(10)},
					},
					HoldTime:     int(cartTTL.Seconds()),
					BasePrice:    decimal.NewFromFloat(testBasePrice),
					TotalPrice:   decimal.NewFromFloat(175),
					ShowtimeDate: time.Time{}.Format(time.RFC1123),
				},
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.seatRepo.GetSeatsByShowtimeAndSeatIdsFunc = tt.seatsFunc

			defer s.bookingRepo.AssertExpectations(s.T())
			defer s.redisClient.AssertExpectations(s.T())
			defer s.redisPipeline.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, fmt.Sprintf("/showtimes/%d/cart", tt.showtimeID), tt.input)
			r = setupTestSession(s.T(), s.app, r, 1)

			handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				s.app.CreateCart(w, r, tt.showtimeID)
			}))
			handler = s.app.sessionManager.LoadAndSave(handler)
			handler.ServeHTTP(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response api.CartResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				cmpOpts := cmpopts.IgnoreFields(api.Cart{}, "CartId")
				diff := cmp.Diff(tt.wantResponse, &response, cmpOpts)
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

func (s *CartTestSuite) TestDeleteCart() {
	tests := []struct {
		name           string
		showtimeID     int
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "should fail when showtime ID is zero or negative",
			showtimeID:     0,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "showtime ID must be greater than zero",
		},
		{
			name:       "should fail when there is no cart bound to the session",
			showtimeID: testShowtimeID,
			setupMocks: func() {
				s.redisClient.On("Get", mock.Anything, mock.Anything).Return(redis.NewStringCmd(context.Background(), ""))
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:       "should clean up dangling session key when cart is gone",
			showtimeID: testShowtimeID,
			setupMocks: func() {
				s.redisClient.On("Get", mock.Anything, mock.Anything).Return(redis.NewStringResult(cartID, nil)).Once()
				s.redisClient.On("Get", mock.Anything, cartID).Return(redis.NewStringResult("", redis.Nil)).Once()
				s.redisClient.On("Del", mock.Anything, mock.Anything).Return(redis.NewIntCmd(context.Background(), 1))
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:       "should fail when cart belongs to a different showtime",
			showtimeID: 42,
			setupMocks: func() {
				s.redisClient.On("Get", mock.Anything, mock.Anything).Return(redis.NewStringResult(cartID, nil)).Once()
				s.redisClient.On("Get", mock.Anything, cartID).Return(redis.NewStringResult(cartDataStr, nil)).Once()
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:       "should release seat locks and cart keys",
			showtimeID: testShowtimeID,
			setupMocks: func() {
				s.redisClient.On("Get", mock.Anything, mock.Anything).Return(redis.NewStringResult(cartID, nil)).Once()
				s.redisClient.On("Get", mock.Anything, cartID).Return(redis.NewStringResult(cartDataStr, nil)).Once()
				s.redisClient.On("TxPipeline").Return(s.redisPipeline)
				s.redisPipeline.On("Del", mock.Anything, mock.Anything).Return(redis.NewIntCmd(context.Background(), 1))
				s.redisPipeline.On("SRem", mock.Anything, mock.Anything, mock.Anything).Return(redis.NewIntCmd(context.Background(), 1))
				s.redisPipeline.On("Exec", mock.Anything).Return([]redis.Cmder{}, nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.redisClient.AssertExpectations(s.T())
			defer s.redisPipeline.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodDelete, fmt.Sprintf("/showtimes/%d/cart", tt.showtimeID), nil)
			r = setupTestSession(s.T(), s.app, r, 1)

			handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				s.app.DeleteCart(w, r, tt.showtimeID)
			}))
			handler = s.app.sessionManager.LoadAndSave(handler)
			handler.ServeHTTP(w, r)

			s.Equal(tt.wantStatus, w.Code)

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
