package app

import (
	"net/http"
	"testing"

	"github.com/CongThang213/MovieHub/internal/domain"
)

func TestProtectRoutes(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		userId         int
		role           domain.Role
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "public route passes through without a session",
			method:     http.MethodGet,
			path:       "/movies",
			wantStatus: http.StatusOK,
		},
		{
			name:           "profile route rejects anonymous callers",
			method:         http.MethodGet,
			path:           "/users/me",
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrUnauthorizedAccess,
		},
		{
			name:           "booking route rejects anonymous callers",
			method:         http.MethodGet,
			path:           "/users/me/bookings",
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrUnauthorizedAccess,
		},
		{
			name:           "checkout route rejects anonymous callers",
			method:         http.MethodPost,
			path:           "/checkout/session",
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrUnauthorizedAccess,
		},
		{
			name:       "profile route admits an authenticated user",
			method:     http.MethodGet,
			path:       "/users/me",
			userId:     1,
			role:       domain.RoleUser,
			wantStatus: http.StatusOK,
		},
		{
			name:           "admin route rejects anonymous callers",
			method:         http.MethodPost,
			path:           "/admin/movies",
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrUnauthorizedAccess,
		},
		{
			name:           "admin route rejects a regular user",
			method:         http.MethodPost,
			path:           "/admin/movies",
			userId:         1,
			role:           domain.RoleUser,
			wantStatus:     http.StatusForbidden,
			wantErrMessage: "You don't have permission to access this resource",
		},
		{
			name:       "admin route admits an admin",
			method:     http.MethodPost,
			path:       "/admin/showtimes",
			userId:     2,
			role:       domain.RoleAdmin,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			w, r := executeRequest(t, tt.method, tt.path, nil)

			if tt.userId != 0 {
				r = setupTestSession(t, app, r, tt.userId)
				app.sessionManager.Put(r.Context(), SessionKeyUserRole.String(), string(tt.role))
			}

			handler := app.sessionManager.LoadAndSave(app.protectRoutes(next))
			handler.ServeHTTP(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("protectRoutes() status = %v, want %v", got, tt.wantStatus)
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}
