package middleware

import (
	"net/http"

	"hotelpos/shared/failure"
	"hotelpos/shared/validator"
	"hotelpos/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// UUIDParam rejects a request with 400 unless the URL parameter name is a UUID, so a
// malformed identifier never reaches the database.
func UUIDParam(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if validator.ValidateVar(chi.URLParam(request, name), "required,uuid") != nil {
				response.WithError(writer, failure.BadRequestFromString(name+" must be a valid UUID"))

				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
