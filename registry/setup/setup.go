package setup

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/woog-life/potsdam-booking-scraper/config"
	"github.com/woog-life/potsdam-booking-scraper/registry"
	"github.com/woog-life/potsdam-booking-scraper/registry/env"
	"github.com/woog-life/potsdam-booking-scraper/registry/file"
	"github.com/woog-life/potsdam-booking-scraper/registry/git"
	"github.com/woog-life/potsdam-booking-scraper/registry/k8s"
)

// Init wires every configured lake source, plus the placeholder resolvers
// that post-process lake definitions.
func Init(ctxt context.Context, envConfig config.Configuration, appConfig config.ApplicationConfiguration) (registry.Sources, []registry.Resolver, error) {
	var sources registry.Sources
	var resolvers []registry.Resolver

	if envConfig.PotsdamUUID == "" {
		log.Info().Msg("POTSDAM_UUID not set, env lake source is disabled")
	} else {
		log.Info().Msg("Enabling env lake source")
		sources = append(sources, &env.Source{})
	}

	if appConfig.Registry.File.Disabled || appConfig.Registry.File.Path == "" {
		log.Info().Msg("File lake source is disabled")
	} else {
		log.Info().Msg("Enabling file lake source")
		sources = append(sources, &file.Source{})
	}

	if appConfig.Registry.Git.Disabled || appConfig.Registry.Git.Uri == "" {
		log.Info().Msg("Git lake source is disabled")
	} else {
		log.Info().Msg("Enabling git lake source")
		sources = append(sources, &git.Source{EnableTrace: appConfig.Tracing.Enabled})
	}

	var k8sSource *k8s.Source
	if !appConfig.Registry.K8s.Enabled {
		log.Info().Msg("K8s lake source is disabled")
	} else {
		log.Info().Msg("Enabling k8s lake source")
		k8sSource = &k8s.Source{}
		sources = append(sources, k8sSource)
	}

	for _, each := range sources {
		if sourceErr := each.Init(ctxt, envConfig, appConfig); sourceErr != nil {
			return nil, nil, sourceErr
		}
	}

	// the k8s source's Init built the client; share it with the resolver
	if k8sSource != nil {
		resolvers = append(resolvers, k8s.NewResolver(k8sSource.Client, k8sSource.Config))
	}

	return sources, resolvers, nil
}
