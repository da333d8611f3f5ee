package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// withURLParam injects a chi URL parameter so handlers can be exercised
// without mounting the full router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
