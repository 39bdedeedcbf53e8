package events

import (
	"context"
	"encoding/json"

	"github.com/CongThang213/MovieHub/internal/domain"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"
)

const BookingConfirmedTopic = "events.booking_confirmed"

// RedisPublisher publishes domain events to Redis streams. Consumers
// pick them up through their own consumer groups, so a slow mailer never
// blocks the webhook path.
type RedisPublisher struct {
	publisher message.Publisher
}

func NewRedisPublisher(rdb redis.UniversalClient, logger watermill.LoggerAdapter) (*RedisPublisher, error) {
	publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: rdb,
	}, logger)
	if err != nil {
		return nil, err
	}

	return &RedisPublisher{publisher: publisher}, nil
}

func (p *RedisPublisher) PublishBookingConfirmed(ctx context.Context, event domain.BookingConfirmed) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	return p.publisher.Publish(BookingConfirmedTopic, msg)
}

func (p *RedisPublisher) Close() error {
	return p.publisher.Close()
}
