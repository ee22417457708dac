// Package httpnegotiate is the net/http-facing collaborator around
// negotiate.Matcher: the surrounding HTTP server, request dispatch, and
// response encoding stay outside the core, so this glue lives in its own
// package and the core module itself imports no net/http.
package httpnegotiate

import (
	"context"
	"net/http"

	"github.com/trpc-ecosystem/negotiate"
)

// Header keys this middleware reads and writes.
const (
	AcceptHeaderKey = "Accept"
	VaryHeaderKey   = "Vary"
)

type contextKey struct{}

// TypeFromContext returns the media type Handler negotiated for r, and
// whether one was stored (it is stored only when the wrapped handler is
// actually invoked, i.e. on a match).
func TypeFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(contextKey{}).(string)
	return v, ok
}

// Handler wraps next, negotiating the response media type from each
// request's Accept header against m before calling next: a malformed
// Accept header yields 400 Bad Request, a well-formed header with no
// acceptable representation yields 406 Not Acceptable, and a match sets
// Vary: Accept, stores the chosen type on the request context (retrievable
// with TypeFromContext), and calls next.
func Handler(m *negotiate.Matcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var header *string
			if v := r.Header.Get(AcceptHeaderKey); v != "" {
				header = &v
			}

			chosen, matched, err := m.SelectOrError(header)
			if err != nil {
				http.Error(w, "Bad Request", http.StatusBadRequest)
				return
			}
			if !matched {
				http.Error(w, "Not Acceptable", http.StatusNotAcceptable)
				return
			}

			w.Header().Set(VaryHeaderKey, AcceptHeaderKey)
			ctx := context.WithValue(r.Context(), contextKey{}, chosen)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
