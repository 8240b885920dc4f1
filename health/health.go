package health

import (
	"github.com/heptiolabs/healthcheck"
	"net/http"
)

// New - A liveness check indicates that this instance of the scraper daemon should be destroyed and
// replaced, not that some upstream dependency (the booking site, the backend API) is down.
//
// A readiness check indicates that this instance is currently unable to do useful work because of an
// upstream or some transient failure. Readiness includes all liveness checks, and is their superset.
//
// Both endpoints return 200 / OK out of the box; they only start returning 5xx if checks are added
// and those start to error.
func New(opts ...Opt) *Healthchecks {
	facade := &Healthchecks{handler: healthcheck.NewHandler()}

	for _, optionFunc := range opts {
		optionFunc(&facade.opts)
	}

	return facade
}

type Healthchecks struct {
	opts
	handler healthcheck.Handler
}

// StartListening Start the endpoints once we believe that we are broadly healthy
func (f *Healthchecks) StartListening() {
	if f.ChiMux != nil {
		f.ChiMux.Handle("/liveness", http.HandlerFunc(f.handler.LiveEndpoint))
		f.ChiMux.Handle("/readiness", http.HandlerFunc(f.handler.ReadyEndpoint))
	}
}
