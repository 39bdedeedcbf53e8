package integration_test

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/CongThang213/MovieHub/internal/app"
	"github.com/CongThang213/MovieHub/internal/mailer"
	"github.com/CongThang213/MovieHub/internal/mocks"
	"github.com/CongThang213/MovieHub/internal/payment"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App             *app.Application
	DB              *pgxpool.Pool
	RedisClient     *redis.Client
	Mailer          *mailer.MockMailer
	PaymentProvider *payment.MockPaymentProvider
	EventPublisher  *mocks.MockEventPublisher
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	mockMailer := mailer.NewMockMailer()
	mockPaymentProvider := payment.NewMockPaymentProvider()
	eventPublisher := &mocks.MockEventPublisher{}

	application, err := app.NewApplication(
		cfg,
		logger,
		app.WithMailer(mockMailer),
		app.WithPaymentProvider(mockPaymentProvider),
		app.WithEventPublisher(eventPublisher),
	)
	if err != nil {
		return nil, err
	}

	// separate pool for seeding and assertions, the app keeps its own
	db, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.URL})

	return &TestApp{
		App:             application,
		DB:              db,
		RedisClient:     redisClient,
		Mailer:          mockMailer,
		PaymentProvider: mockPaymentProvider,
		EventPublisher:  eventPublisher,
	}, nil
}

// authenticatedUserCookies seeds the default user and returns session cookies
// obtained through a real login.
func (app *TestApp) authenticatedUserCookies(t testing.TB) []*http.Cookie {
	truncateUsersAndTokens(t, app.DB)
	insertTestUser(t, app.DB, defaultTestUser())

	return loginUser(t, app, TestUserEmail, TestUserPassword)
}
