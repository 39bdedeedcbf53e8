package app

import (
	"net/http"

	"github.com/CongThang213/MovieHub/api"
)

// OpenAPIDocument serves the API contract so clients and tooling can
// discover the available endpoints.
func (app *Application) OpenAPIDocument(w http.ResponseWriter, r *http.Request) {
	swagger, err := api.GetSwagger()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, swagger, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
