// Package response writes the JSON envelopes returned by every handler: {"data": ...},
// {"error": "..."} or {"message": "..."}.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"hotelpos/shared/constant"
	"hotelpos/shared/failure"
	"hotelpos/shared/logger"

	"github.com/rs/zerolog/log"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

type errorTracer interface {
	TraceError(err error)
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: &payload})
}

// WithError maps err to its status code. Only failures expose their message; anything
// else is reported as the bare status text.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	message := http.StatusText(code)
	if failure.Is(err) {
		message = err.Error()
	}

	write(writer, code, Error{Error: &message})
}

// Fail records err on the scope, logs it with action and writes the error response.
// Client failures are logged as warnings.
func Fail(writer http.ResponseWriter, scope errorTracer, err error, action string) {
	scope.TraceError(err)

	event := log.Error()
	if failure.GetCode(err) < http.StatusInternalServerError {
		event = log.Warn()
	}

	event.Err(err).Msg("failed to " + action)

	WithError(writer, err)
}

// WithFile sends content as a downloadable attachment.
func WithFile(writer http.ResponseWriter, contentType, filename string, content []byte) {
	header := writer.Header()
	header.Set(constant.RequestHeaderContentType, contentType)
	header.Set(constant.RequestHeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	header.Set(constant.RequestHeaderContentLength, strconv.Itoa(len(content)))
	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write(content); err != nil {
		logger.ErrorWithStack(err)
	}
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
