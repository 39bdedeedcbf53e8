package events

import (
	"encoding/json"

	"github.com/CongThang213/MovieHub/internal/domain"
	"github.com/CongThang213/MovieHub/internal/mailer"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/redis/go-redis/v9"
)

const bookingMailerConsumerGroup = "moviehub.booking_confirmation_mailer"

// NewRouter wires the event consumers. Currently a single handler that
// turns BookingConfirmed events into confirmation e-mails.
func NewRouter(rdb redis.UniversalClient, mailer mailer.Mailer, logger watermill.LoggerAdapter) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(middleware.Recoverer)

	subscriber, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
		Client:        rdb,
		ConsumerGroup: bookingMailerConsumerGroup,
	}, logger)
	if err != nil {
		return nil, err
	}

	router.AddNoPublisherHandler(
		"send_booking_confirmation_email",
		BookingConfirmedTopic,
		subscriber,
		func(msg *message.Message) error {
			var event domain.BookingConfirmed

			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				// A payload that doesn't unmarshal will never succeed,
				// don't keep redelivering it.
				return nil
			}

			return mailer.Send(event.Email, "booking_confirmation.tmpl", map[string]any{
				"firstName":    event.FirstName,
				"bookingID":    event.BookingID,
				"movieTitle":   event.MovieTitle,
				"theaterName":  event.TheaterName,
				"hallName":     event.HallName,
				"showtimeDate": event.ShowtimeDate.Format("Jan 2, 2006 15:04"),
				"seats":        event.Seats,
				"totalPrice":   event.TotalPrice,
			})
		},
	)

	return router, nil
}
