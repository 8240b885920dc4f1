package env

import (
	"context"
	"errors"

	"github.com/woog-life/potsdam-booking-scraper/config"
	"github.com/woog-life/potsdam-booking-scraper/registry"
)

// Source yields the single lake configured through the environment, i.e.
// the POTSDAM_UUID variable the CronJob injects from the `lake-uuids`
// ConfigMap.
type Source struct {
	lake registry.Lake
}

func (s *Source) Order() int {
	return 0 // the environment always wins
}

func (s *Source) Init(_ context.Context, envConfig config.Configuration, appConfig config.ApplicationConfiguration) error {
	if envConfig.PotsdamUUID == "" {
		return errors.New("POTSDAM_UUID not defined in environment")
	}

	variation := appConfig.Scraper.Variation
	if variation == "" {
		variation = registry.DefaultVariation
	}

	s.lake = registry.Lake{
		Name:      "potsdam",
		UUID:      envConfig.PotsdamUUID,
		Variation: variation,
	}
	return nil
}

func (s *Source) GetLakes(_ context.Context) ([]registry.Lake, error) {
	return []registry.Lake{s.lake}, nil
}

func (s *Source) Close() {
	// NOOP
}
