// SPDX-License-Identifier: MIT

package openapi_server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/natevvv/graph-pathfinder/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// A Route defines the parameters for an api endpoint
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

// Routes are a collection of defined api endpoints
type Routes []Route

// Router defines the required methods for retrieving api routes
type Router interface {
	Routes() Routes
}

// NewRouter creates a new router for any number of api routers.
// Every router also serves the prometheus metrics at /metrics.
func NewRouter(logger *slog.Logger, routers ...Router) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	for _, api := range routers {
		for _, route := range api.Routes() {
			var handler http.Handler
			handler = route.HandlerFunc
			handler = Logger(logger, handler, route.Name)

			router.
				Methods(route.Method, http.MethodOptions).
				Path(route.Pattern).
				Name(route.Name).
				Handler(handler)
		}
	}
	router.Methods(http.MethodGet).Path("/metrics").Name("Metrics").Handler(promhttp.Handler())

	return router
}

// EncodeJSONResponse uses the json encoder to write an interface to the http response with an optional status code
func EncodeJSONResponse(i interface{}, status *int, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	if status != nil {
		w.WriteHeader(*status)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	return json.NewEncoder(w).Encode(i)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Logger logs every request and records its duration
func Logger(logger *slog.Logger, inner http.Handler, name string) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		inner.ServeHTTP(recorder, r)

		elapsed := time.Since(start)
		metrics.ObserveRequest(name, recorder.status, elapsed)
		logger.Info("request",
			slog.String("method", r.Method),
			slog.String("uri", r.RequestURI),
			slog.String("route", name),
			slog.Int("status", recorder.status),
			slog.Duration("elapsed", elapsed),
		)
	})
}
