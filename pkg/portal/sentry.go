package portal

import (
	"github.com/folio/metal/env"
	sentryhttp "github.com/getsentry/sentry-go/http"
)

type Sentry struct {
	Handler *sentryhttp.Handler
	Options *sentryhttp.Options
	Env     *env.Environment
}
