package setup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woog-life/potsdam-booking-scraper/config"
)

const potsdamUUID = "25aa2968-e34e-4f86-87cc-56b16b5aff36"

func TestInitEnvSourceOnly(t *testing.T) {
	envConfig := config.Configuration{PotsdamUUID: potsdamUUID}

	sources, resolvers, err := Init(context.Background(), envConfig, config.ApplicationConfiguration{})
	require.NoError(t, err)

	assert.Len(t, sources, 1)
	assert.Empty(t, resolvers)

	lakes, err := sources[0].GetLakes(context.Background())
	require.NoError(t, err)
	require.Len(t, lakes, 1)
	assert.Equal(t, potsdamUUID, lakes[0].UUID)
}

func TestInitNoSources(t *testing.T) {
	sources, resolvers, err := Init(context.Background(), config.Configuration{}, config.ApplicationConfiguration{})
	require.NoError(t, err)

	assert.Empty(t, sources)
	assert.Empty(t, resolvers)
}

func TestInitFileSource(t *testing.T) {
	appConfig := config.ApplicationConfiguration{}
	appConfig.Registry.File.Path = t.TempDir()

	sources, _, err := Init(context.Background(), config.Configuration{PotsdamUUID: potsdamUUID}, appConfig)
	require.NoError(t, err)

	assert.Len(t, sources, 2)
}

func TestInitFileSourceDisabledWins(t *testing.T) {
	appConfig := config.ApplicationConfiguration{}
	appConfig.Registry.File.Path = t.TempDir()
	appConfig.Registry.File.Disabled = true

	sources, _, err := Init(context.Background(), config.Configuration{PotsdamUUID: potsdamUUID}, appConfig)
	require.NoError(t, err)

	assert.Len(t, sources, 1)
}
