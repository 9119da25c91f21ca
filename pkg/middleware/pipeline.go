package middleware

import (
	"github.com/folio/pkg/endpoint"
)

type Pipeline struct {
	RequestID RequestIDMiddleware
	Throttle  ThrottleMiddleware
}

func MakePipeline(throttle ThrottleMiddleware) Pipeline {
	return Pipeline{
		RequestID: MakeRequestIDMiddleware(),
		Throttle:  throttle,
	}
}

func (m Pipeline) Chain(h endpoint.ApiHandler, handlers ...endpoint.Middleware) endpoint.ApiHandler {
	for i := len(handlers) - 1; i >= 0; i-- {
		h = handlers[i](h)
	}

	return h
}

// Public is the chain applied to every page and fixture route.
func (m Pipeline) Public(h endpoint.ApiHandler) endpoint.ApiHandler {
	return m.Chain(h, m.RequestID.Handle, m.Throttle.Handle)
}
