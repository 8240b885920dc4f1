package job

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookingscraper_runs_total",
		Help: "Scrape-and-push runs started.",
	})
	runFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookingscraper_run_failures_total",
		Help: "Scrape-and-push runs that ended in an error.",
	})
	slotsScrapedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookingscraper_slots_scraped_total",
		Help: "Booking slots successfully extracted from the booking site.",
	})
	eventsPushedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookingscraper_events_pushed_total",
		Help: "Booking events accepted by the backend.",
	})
)
