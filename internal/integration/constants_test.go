package integration_test

import (
	"time"

	"github.com/CongThang213/MovieHub/internal/domain"
)

const (
	// User related constants
	TestUserFirstName = "John"
	TestUserLastName  = "Doe"
	TestUserEmail     = "test@example.com"
	TestUserPassword  = "Test123!@#"
	TestUserBirthDate = "1990-01-01"
	TestUserGender    = domain.Male

	AdminEmail = "admin@example.com"

	// Movie related constants
	TestMovieTitle       = "Test Movie"
	TestMovieDescription = "A test movie description."
	TestMovieLanguage    = "English"
	TestMovieDuration    = 120
	TestMoviePosterUrl   = "https://example.com/poster.jpg"
	TestMovieDirector    = "Jane Doe"
	TestMovieRating      = 7.5
)

var (
	TestMovieGenres      = []string{"Action", "Drama"}
	TestMovieCast        = []string{"Actor One", "Actor Two"}
	TestMovieReleaseDate = time.Now().Truncate(24 * time.Hour).Format("2006-01-02")
)
