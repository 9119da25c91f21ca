package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/folio/pkg/endpoint"
	"github.com/folio/pkg/portal"
	"github.com/google/uuid"
)

type RequestIDMiddleware struct {
	generate func() string
}

func MakeRequestIDMiddleware() RequestIDMiddleware {
	return RequestIDMiddleware{
		generate: func() string { return uuid.NewString() },
	}
}

// Handle keeps a well formed incoming X-Request-ID or mints a new one, then
// exposes it on the request context and the response headers.
func (m RequestIDMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		id := strings.TrimSpace(r.Header.Get(portal.RequestIDHeader))

		if _, err := uuid.Parse(id); err != nil {
			id = m.generate()
		}

		w.Header().Set(portal.RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), portal.RequestIDKey, id)

		return next(w, r.WithContext(ctx))
	}
}
