// Package handler exposes the API as a single serverless function. The router is built on
// the first invocation and reused while the instance stays warm.
package handler

import (
	"net/http"
	"sync"

	"hotelpos/config"
	"hotelpos/di"
	"hotelpos/shared/logger"
)

var router = sync.OnceValue(func() http.Handler {
	logger.InitLogger()
	logger.SetLogLevel(config.Get())

	return di.InitializeService()
})

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	router().ServeHTTP(w, r)
}
