package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/basecamp/cookie-composer/internal/metrics"
	"github.com/basecamp/cookie-composer/pkg/cookie"
)

const (
	operationSet     = "set"
	operationDestroy = "destroy"
)

// SetCookie writes a cookie for the request's response and records the
// outcome.
func SetCookie(w http.ResponseWriter, r *http.Request, name, value string, opts ...cookie.Option) error {
	ctx := CookieContext(w, r)
	err := cookie.Set(ctx, name, value, opts...)
	trackCookieWrite(ctx, operationSet, name, err)
	return err
}

func DestroyCookie(w http.ResponseWriter, r *http.Request, name string, opts ...cookie.Option) error {
	ctx := CookieContext(w, r)
	err := cookie.Destroy(ctx, name, opts...)
	trackCookieWrite(ctx, operationDestroy, name, err)
	return err
}

// Private

func trackCookieWrite(ctx cookie.Context, operation, name string, err error) {
	switch {
	case err == nil && ctx.Response.Finalized():
		metrics.Tracker.TrackCookieWrite(operation, metrics.OutcomeSkipped)
	case err == nil:
		metrics.Tracker.TrackCookieWrite(operation, metrics.OutcomeWritten)
	case errors.Is(err, cookie.ErrMalformedHeader):
		slog.Error("Existing Set-Cookie header could not be parsed", "name", name, "error", err)
		metrics.Tracker.TrackCookieWrite(operation, metrics.OutcomeMalformed)
	default:
		slog.Info("Cookie write rejected", "name", name, "error", err)
		metrics.Tracker.TrackCookieWrite(operation, metrics.OutcomeRejected)
	}
}
