package middleware

import (
	"net/http"
	"strconv"

	"github.com/akolanti/lexgate/internal/metrics"
	"github.com/akolanti/lexgate/pkg/logger_i"
	"github.com/go-chi/chi/v5"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
	id           string
}

type step func(re requestResponseStruct) requestResponseStruct

var logger = logger_i.NewLogger("middleware")

// Wrap traces a public route.
func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return chain(next, injectTrace)
}

// Limited traces and rate limits a public route, used for login and signup.
func Limited(next http.HandlerFunc) http.HandlerFunc {
	return chain(next, injectTrace, rateLimiter)
}

// Authenticated rejects api calls without a usable auth cookie.
func Authenticated(next http.HandlerFunc) http.HandlerFunc {
	return chain(next, injectTrace, authenticate)
}

// AuthenticatedLimited also rate limits, for routes that reach the legal api.
func AuthenticatedLimited(next http.HandlerFunc) http.HandlerFunc {
	return chain(next, injectTrace, authenticate, rateLimiter)
}

func chain(next http.HandlerFunc, steps ...step) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: http.StatusOK} //metrics
		re := requestResponseStruct{req: r, writer: rec, logger: logger}
		re.logger.Debug("New request received", "method", r.Method, "path", r.URL.Path)

		for _, s := range steps {
			re = s(re)
			if re.badRequest.isBadRequest {
				handleBadRequest(re)
				break
			}
		}
		if !re.badRequest.isBadRequest {
			next(rec, re.req)
		}

		metrics.HttpRequestsTotal.WithLabelValues(routeLabel(r), strconv.Itoa(rec.Status)).Inc() //metrics
	}
}

// routeLabel keeps ids out of the metric labels.
func routeLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
