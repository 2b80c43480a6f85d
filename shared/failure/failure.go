// Package failure carries the business errors that reach the client. Anything that is not a
// *Failure is reported as an internal error by the response layer.
package failure

import (
	"errors"
	"net/http"
)

type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	InvalidDateRange = &Failure{Code: http.StatusBadRequest, Message: "start date must be before end date"}
	ForbiddenError   = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
)

func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, message string) error {
	return &Failure{Code: code, Message: message}
}

// BadRequest turns a validation error into a 400. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return newFailure(http.StatusForbidden, msg)
}

func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, msg)
}

// Conflict reports a state the operation cannot run from: an occupied room, a closed stay,
// a checkout already done.
func Conflict(msg string) error {
	return newFailure(http.StatusConflict, msg)
}

// IntegrityViolation refuses a mutation because other records still reference the entity.
func IntegrityViolation(msg string) error {
	return newFailure(http.StatusUnprocessableEntity, msg)
}

// GetCode returns the HTTP status carried by err, 500 when it carries none.
func GetCode(err error) int {
	if fail, ok := As(err); ok {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// Is reports whether err carries a Failure anywhere in its chain.
func Is(err error) bool {
	_, ok := As(err)

	return ok
}

func As(err error) (*Failure, bool) {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail, true
	}

	return nil, false
}
