package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/CongThang213/MovieHub/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
	"cartId":    {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []*http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanValue(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanValue(v any) {
	switch value := v.(type) {
	case map[string]any:
		for k := range value {
			if _, ok := keysToIgnore[k]; ok {
				delete(value, k)
				continue
			}
			cleanValue(value[k])
		}
	case []any:
		for _, item := range value {
			cleanValue(item)
		}
	}
}

func executeSQLFile(t testing.TB, db *pgxpool.Pool, path string) {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(), string(content))
	require.NoError(t, err)
}

func truncateTables(t testing.TB, db *pgxpool.Pool, tables ...string) {
	t.Helper()

	for _, table := range tables {
		_, err := db.Exec(
			context.Background(),
			fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table),
		)
		require.NoError(t, err)
	}
}

func truncateMovies(t testing.TB, db *pgxpool.Pool) {
	truncateTables(t, db, "movies")
}

func truncateUsers(t testing.TB, db *pgxpool.Pool) {
	truncateTables(t, db, "users")
}

type testMovie struct {
	Title       string
	Description string
	Genres      []string
	Language    string
	ReleaseDate time.Time
	Duration    int
	PosterUrl   string
	Director    string
	CastMembers []string
	Rating      float64
}

func defaultTestMovie() testMovie {
	releaseDate, _ := time.Parse("2006-01-02", TestMovieReleaseDate)

	return testMovie{
		Title:       TestMovieTitle,
		Description: TestMovieDescription,
		Genres:      TestMovieGenres,
		Language:    TestMovieLanguage,
		ReleaseDate: releaseDate,
		Duration:    TestMovieDuration,
		PosterUrl:   TestMoviePosterUrl,
		Director:    TestMovieDirector,
		CastMembers: TestMovieCast,
		Rating:      TestMovieRating,
	}
}

func insertTestMovie(t testing.TB, db *pgxpool.Pool, movie testMovie) {
	t.Helper()

	query := `
		INSERT INTO movies (title, description, genres, language, release_date, duration, poster_url, director, cast_members, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := db.Exec(
		context.Background(),
		query,
		movie.Title,
		movie.Description,
		movie.Genres,
		movie.Language,
		movie.ReleaseDate,
		movie.Duration,
		movie.PosterUrl,
		movie.Director,
		movie.CastMembers,
		movie.Rating,
	)
	require.NoError(t, err)
}

type testUser struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	BirthDate string
	Gender    domain.Gender
	Role      domain.Role
	Activated bool
}

func defaultTestUser() testUser {
	return testUser{
		FirstName: TestUserFirstName,
		LastName:  TestUserLastName,
		Email:     TestUserEmail,
		Password:  TestUserPassword,
		BirthDate: TestUserBirthDate,
		Gender:    TestUserGender,
		Role:      domain.RoleUser,
		Activated: true,
	}
}

func insertTestUser(t testing.TB, db *pgxpool.Pool, u testUser) int {
	t.Helper()

	var user domain.User
	require.NoError(t, user.Password.Set(u.Password))

	query := `
		INSERT INTO users (first_name, last_name, email, password_hash, birth_date, gender, role, activated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int
	err := db.QueryRow(
		context.Background(),
		query,
		u.FirstName,
		u.LastName,
		u.Email,
		user.Password.Hash,
		u.BirthDate,
		u.Gender,
		u.Role,
		u.Activated,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func flushAllCache(t testing.TB, client *redis.Client) {
	t.Helper()

	require.NoError(t, client.FlushAll(context.Background()).Err())
}

// lockSeatInCache mimics a seat hold owned by the given session.
func lockSeatInCache(t testing.TB, client *redis.Client, showtimeId, seatId int, sessionId string) {
	t.Helper()

	ctx := context.Background()
	lockKey := fmt.Sprintf("seat_lock:%d:%d", showtimeId, seatId)
	setKey := fmt.Sprintf("seat_locks:%d", showtimeId)

	require.NoError(t, client.Set(ctx, lockKey, sessionId, 5*time.Minute).Err())
	require.NoError(t, client.SAdd(ctx, setKey, seatId).Err())
}

// loginUser authenticates through the real login endpoint and returns the
// session cookies for follow-up requests.
func loginUser(t testing.TB, testApp *TestApp, email, password string) []*http.Cookie {
	t.Helper()

	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	testApp.App.Routes().ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusNoContent, res.StatusCode, "login failed for %s", email)

	return res.Cookies()
}
