package registry

import (
	"context"
	"fmt"
	"sort"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const DefaultVariation = "Stadtbad Babelsberg"

// Resolver replaces placeholder values in lake definitions, e.g.
// `k8s/cm:wooglife/lake-uuids/potsdam`, with their actual values.
type Resolver interface {
	CanResolve(placeholder string) bool
	Resolve(ctxt context.Context, placeholder string) (string, bool, error)
}

// Collect queries every source in priority order and merges the results.
// The first source (lowest Order) to define a UUID wins; later duplicates
// are skipped.
func Collect(ctxt context.Context, sources Sources, resolvers ...Resolver) ([]Lake, error) {
	sort.SliceStable(sources, Sorter{Sources: sources}.Sort())

	seen := hashset.New()
	lakes := make([]Lake, 0)

	for _, source := range sources {
		found, err := source.GetLakes(ctxt)
		if err != nil {
			return nil, err
		}

		for _, lake := range found {
			if lake, err = resolvePlaceholders(ctxt, lake, resolvers); err != nil {
				return nil, err
			}

			if _, err := uuid.Parse(lake.UUID); err != nil {
				return nil, fmt.Errorf("lake [%s] has invalid UUID [%s]: %w", lake.Name, lake.UUID, err)
			}

			if seen.Contains(lake.UUID) {
				log.Debug().Msgf("Skipping duplicate lake [%s] from lower-priority source", lake.Name)
				continue
			}

			if lake.Variation == "" {
				lake.Variation = DefaultVariation
			}

			seen.Add(lake.UUID)
			lakes = append(lakes, lake)
		}
	}

	return lakes, nil
}

func resolvePlaceholders(ctxt context.Context, lake Lake, resolvers []Resolver) (Lake, error) {
	var err error
	if lake.UUID, err = resolveValue(ctxt, lake.UUID, resolvers); err != nil {
		return lake, err
	}
	if lake.Variation, err = resolveValue(ctxt, lake.Variation, resolvers); err != nil {
		return lake, err
	}
	return lake, nil
}

func resolveValue(ctxt context.Context, value string, resolvers []Resolver) (string, error) {
	for _, resolver := range resolvers {
		if !resolver.CanResolve(value) {
			continue
		}

		resolved, found, err := resolver.Resolve(ctxt, value)
		if err != nil {
			return "", err
		}
		if !found {
			return "", fmt.Errorf("placeholder [%s] could not be resolved", value)
		}
		return resolved, nil
	}
	return value, nil
}
