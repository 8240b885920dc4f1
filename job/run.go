package job

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/woog-life/potsdam-booking-scraper/api"
	"github.com/woog-life/potsdam-booking-scraper/registry"
	"github.com/woog-life/potsdam-booking-scraper/scrape"
)

// Runner executes one scrape-and-push run. A run either completes for every
// lake or fails as a whole; the CronJob contract (backoffLimit: 0) means a
// failed run is reported and not retried in-process.
type Runner struct {
	Sources   registry.Sources
	Resolvers []registry.Resolver
	Fetcher   *scrape.Fetcher
	Client    *api.Client

	DaysAhead int
}

func (r *Runner) Run(ctxt context.Context) error {
	runsTotal.Inc()

	if err := r.run(ctxt); err != nil {
		runFailuresTotal.Inc()
		return err
	}
	return nil
}

func (r *Runner) run(ctxt context.Context) error {
	if r.Client.APIKey == "" {
		return errors.New("API_KEY not defined")
	}

	lakes, err := registry.Collect(ctxt, r.Sources, r.Resolvers...)
	if err != nil {
		return err
	}
	if len(lakes) == 0 {
		return errors.New("POTSDAM_UUID not defined and no other lake source yielded lakes")
	}

	today := time.Now()

	saleStart, err := scrape.Midnight(today)
	if err != nil {
		return err
	}

	for _, lake := range lakes {
		events, err := r.scrapeLake(ctxt, lake, today, saleStart)
		if err != nil {
			return err
		}

		if err := r.Client.PutBookings(ctxt, lake.UUID, lake.Variation, events); err != nil {
			return err
		}
		eventsPushedTotal.Add(float64(len(events)))

		log.Info().Msgf("Pushed %d event(s) for lake [%s]", len(events), lake.Name)
	}

	return nil
}

func (r *Runner) scrapeLake(ctxt context.Context, lake registry.Lake, today time.Time, saleStart time.Time) ([]api.BookingEvent, error) {
	events := make([]api.BookingEvent, 0, r.DaysAhead)

	for i := 0; i < r.DaysAhead; i++ {
		day := today.AddDate(0, 0, i)

		doc, err := r.Fetcher.FetchDay(ctxt, day)
		if err != nil {
			return nil, fmt.Errorf("couldn't retrieve booking page for lake [%s]: %w", lake.Name, err)
		}

		slot, err := scrape.ParseSlot(doc, day)
		if err != nil {
			return nil, fmt.Errorf("couldn't extract booking information for lake [%s]: %w", lake.Name, err)
		}
		slotsScrapedTotal.Inc()

		events = append(events, api.BookingEvent{
			BookingLink: slot.BookingLink,
			BeginTime:   api.EventTime(slot.BeginTime),
			EndTime:     api.EventTime(slot.EndTime),
			SaleStart:   api.EventTime(saleStart),
			IsAvailable: slot.IsAvailable,
		})
	}

	return events, nil
}
