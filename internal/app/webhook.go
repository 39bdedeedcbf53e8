package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/CongThang213/MovieHub/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const maxWebhookBodyBytes = 65536

// StripeWebhook finalizes or cancels payments based on checkout events.
// Stripe retries on non-2xx, so transient failures return 500 and
// poisoned events are acknowledged after logging.
func (app *Application) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	event, err := webhook.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), app.config.Stripe.WebhookSecret)
	if err != nil {
		logger.Warn("webhook signature verification failed", "error", err)
		app.badRequestResponse(w, r, err)
		return
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		app.handleCheckoutCompleted(w, r, event)
	case stripe.EventTypeCheckoutSessionExpired:
		app.handleCheckoutExpired(w, r, event)
	default:
		logger.Info("ignoring unhandled webhook event", "type", event.Type)
		w.WriteHeader(http.StatusOK)
	}
}

func (app *Application) handleCheckoutCompleted(w http.ResponseWriter, r *http.Request, event stripe.Event) {
	logger := app.contextGetLogger(r)

	var checkoutSession stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &checkoutSession); err != nil {
		logger.Error("failed to unmarshal checkout session from webhook event", "error", err)
		w.WriteHeader(http.StatusOK)
		return
	}

	cartId := checkoutSession.Metadata["cart_id"]
	sessionId := checkoutSession.Metadata["session_id"]

	userId, err := strconv.Atoi(checkoutSession.Metadata["user_id"])
	if err != nil {
		logger.Error("webhook event has invalid user_id metadata", "checkout_session_id", checkoutSession.ID)
		w.WriteHeader(http.StatusOK)
		return
	}

	cart, err := app.getCart(r.Context(), cartId)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			// Payment went through but the cart is gone. Flag the payment
			// so support can reconcile it manually.
			logger.Error(
				"cart missing for completed checkout session",
				"checkout_session_id", checkoutSession.ID,
				"cart_id", cartId,
			)
			err = app.paymentRepo.UpdateStatus(
				r.Context(),
				checkoutSession.ID,
				domain.PaymentStatusCompleted,
				"cart expired before webhook delivery, needs manual reconciliation",
			)
			if err != nil {
				app.serverErrorResponse(w, r, err)
				return
			}

			w.WriteHeader(http.StatusOK)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	bookingSeats := make([]domain.BookingSeat, len(cart.Seats))
	for i, seat := range cart.Seats {
		bookingSeats[i] = domain.BookingSeat{
			ShowtimeID: cart.ShowtimeID,
			SeatID:     seat.Id,
		}
	}

	booking := domain.Booking{
		UserID:            userId,
		ShowtimeID:        cart.ShowtimeID,
		CheckoutSessionID: checkoutSession.ID,
		BookingSeats:      bookingSeats,
	}

	err = app.bookingRepo.Create(r.Context(), &booking)
	if err != nil {
		if errors.Is(err, domain.ErrSeatConflict) {
			logger.Error(
				"booking creation failed: seats already booked",
				"checkout_session_id", checkoutSession.ID,
				"showtime_id", cart.ShowtimeID,
			)
			err = app.paymentRepo.UpdateStatus(
				r.Context(),
				checkoutSession.ID,
				domain.PaymentStatusCanceled,
				domain.ErrSeatConflict.Error(),
			)
			if err != nil {
				app.serverErrorResponse(w, r, err)
				return
			}

			w.WriteHeader(http.StatusOK)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	app.releaseCart(r.Context(), cart, cartId, sessionId)

	user, err := app.userRepo.GetById(r.Context(), userId)
	if err != nil {
		logger.Error("failed to load user for booking confirmation event", "user_id", userId, "error", err)
		w.WriteHeader(http.StatusOK)
		return
	}

	confirmed := domain.BookingConfirmed{
		BookingID:    booking.ID,
		UserID:       user.ID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		MovieTitle:   cart.MovieName,
		TheaterName:  cart.TheaterName,
		HallName:     cart.HallName,
		ShowtimeDate: cart.Date,
		TotalPrice:   cart.TotalPrice,
		Seats:        cart.Seats,
		OccurredAt:   time.Now(),
	}

	if err := app.eventPublisher.PublishBookingConfirmed(r.Context(), confirmed); err != nil {
		// The booking itself is safe, only the confirmation email is lost.
		logger.Error("failed to publish booking confirmed event", "booking_id", booking.ID, "error", err)
	}

	w.WriteHeader(http.StatusOK)
}

func (app *Application) handleCheckoutExpired(w http.ResponseWriter, r *http.Request, event stripe.Event) {
	logger := app.contextGetLogger(r)

	var checkoutSession stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &checkoutSession); err != nil {
		logger.Error("failed to unmarshal checkout session from webhook event", "error", err)
		w.WriteHeader(http.StatusOK)
		return
	}

	err := app.paymentRepo.UpdateStatus(
		r.Context(),
		checkoutSession.ID,
		domain.PaymentStatusCanceled,
		"checkout session expired",
	)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	cartId := checkoutSession.Metadata["cart_id"]
	sessionId := checkoutSession.Metadata["session_id"]

	cart, err := app.getCart(r.Context(), cartId)
	if err == nil {
		app.releaseCart(r.Context(), cart, cartId, sessionId)
	}

	w.WriteHeader(http.StatusOK)
}

func (app *Application) getCart(ctx context.Context, cartId string) (*domain.Cart, error) {
	if cartId == "" {
		return nil, domain.ErrCartNotFound
	}

	cartBytes, err := app.redis.Get(ctx, cartId).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrCartNotFound
		}

		return nil, err
	}

	var cart domain.Cart
	if err := json.Unmarshal(cartBytes, &cart); err != nil {
		return nil, err
	}

	return &cart, nil
}

// releaseCart drops the seat locks and cart keys once the checkout has
// reached a terminal state. Failures only delay cleanup until the TTLs
// expire, so they are logged and swallowed.
func (app *Application) releaseCart(ctx context.Context, cart *domain.Cart, cartId, sessionId string) {
	pipe := app.redis.TxPipeline()

	for _, seat := range cart.Seats {
		pipe.Del(ctx, seatLockKey(cart.ShowtimeID, seat.Id))
		pipe.SRem(ctx, seatSetKey(cart.ShowtimeID), seat.Id)
	}

	pipe.Del(ctx, cartId)

	if sessionId != "" {
		pipe.Del(ctx, cartSessionKey(sessionId))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		app.logger.Error("failed to release cart after checkout", "cart_id", cartId, "error", err)
	}
}
