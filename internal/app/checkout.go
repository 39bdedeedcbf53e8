package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/CongThang213/MovieHub/api"
	"github.com/CongThang213/MovieHub/internal/domain"
	"github.com/redis/go-redis/v9"
)

func (app *Application) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	sessionId := app.sessionManager.Token(r.Context())
	cartId, err := app.redis.Get(r.Context(), cartSessionKey(sessionId)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		app.serverErrorResponse(w, r, err)
		return
	}

	if cartId == "" {
		app.notFoundResponseWithErr(w, r, fmt.Errorf("there is no cart bound to the current session"))
		return
	}

	cartBytes, err := app.redis.Get(r.Context(), cartId).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			app.notFoundResponseWithErr(w, r, domain.ErrCartNotFound)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	var cart domain.Cart
	err = json.Unmarshal(cartBytes, &cart)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	cart.Id = cartId
	showtimeId := cart.ShowtimeID

	// The locks may have expired or been grabbed by another session since
	// the cart was created, re-verify ownership before taking money.
	for _, seat := range cart.Seats {
		ownerSessionId, err := app.redis.Get(r.Context(), seatLockKey(showtimeId, seat.Id)).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				app.editConflictResponseWithErr(w, r, domain.ErrSeatLockExpired)
				return
			}

			app.serverErrorResponse(w, r, err)
			return
		}

		if sessionId != ownerSessionId {
			app.editConflictResponseWithErr(
				w,
				r,
				fmt.Errorf("seat %d doesn't belong to the current session", seat.Id),
			)
			return
		}
	}

	userId := app.contextGetUserId(r)
	user, err := app.userRepo.GetById(r.Context(), userId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	payment := domain.Payment{
		UserID:   userId,
		Amount:   cart.TotalPrice,
		Currency: "USD",
		Status:   domain.PaymentStatusPending,
	}

	err = app.paymentRepo.Create(r.Context(), &payment)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	checkoutSession, err := app.paymentProvider.CreateCheckoutSession(sessionId, user, cart, payment)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.paymentRepo.AttachCheckoutSession(r.Context(), payment.ID, checkoutSession.ID)
	if err != nil {
		logger.Error(
			"failed to attach checkout session to payment",
			"payment_id", payment.ID,
			"checkout_session_id", checkoutSession.ID,
			"error", err,
		)
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.CheckoutSessionResponse{
		RedirectUrl: checkoutSession.URL,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
