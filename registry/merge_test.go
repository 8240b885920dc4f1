package registry

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woog-life/potsdam-booking-scraper/config"
)

const (
	potsdamUUID = "25aa2968-e34e-4f86-87cc-56b16b5aff36"
	woogUUID    = "69c8438b-5aef-442f-a70d-e0d783ea2216"
)

type staticSource struct {
	order int
	lakes []Lake
}

func (s *staticSource) Order() int { return s.order }

func (s *staticSource) Init(_ context.Context, _ config.Configuration, _ config.ApplicationConfiguration) error {
	return nil
}

func (s *staticSource) GetLakes(_ context.Context) ([]Lake, error) {
	return s.lakes, nil
}

func (s *staticSource) Close() {}

type mapResolver struct {
	values map[string]string
}

func (r *mapResolver) CanResolve(placeholder string) bool {
	return strings.HasPrefix(placeholder, "map:")
}

func (r *mapResolver) Resolve(_ context.Context, placeholder string) (string, bool, error) {
	value, found := r.values[strings.TrimPrefix(placeholder, "map:")]
	return value, found, nil
}

func TestCollectPrefersLowerOrder(t *testing.T) {
	higher := &staticSource{order: 0, lakes: []Lake{{Name: "potsdam", UUID: potsdamUUID, Variation: "Stadtbad Babelsberg"}}}
	lower := &staticSource{order: 10, lakes: []Lake{
		{Name: "potsdam-from-file", UUID: potsdamUUID, Variation: "shadowed"},
		{Name: "woog", UUID: woogUUID, Variation: "Familienbad"},
	}}

	lakes, err := Collect(context.Background(), Sources{lower, higher})
	require.NoError(t, err)

	require.Len(t, lakes, 2)
	assert.Equal(t, "potsdam", lakes[0].Name)
	assert.Equal(t, "Stadtbad Babelsberg", lakes[0].Variation)
	assert.Equal(t, "woog", lakes[1].Name)
}

func TestCollectRejectsInvalidUUID(t *testing.T) {
	source := &staticSource{lakes: []Lake{{Name: "broken", UUID: "not-a-uuid"}}}

	_, err := Collect(context.Background(), Sources{source})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Contains(t, err.Error(), "not-a-uuid")
}

func TestCollectAppliesDefaultVariation(t *testing.T) {
	source := &staticSource{lakes: []Lake{{Name: "potsdam", UUID: potsdamUUID}}}

	lakes, err := Collect(context.Background(), Sources{source})
	require.NoError(t, err)

	require.Len(t, lakes, 1)
	assert.Equal(t, DefaultVariation, lakes[0].Variation)
}

func TestCollectResolvesPlaceholders(t *testing.T) {
	source := &staticSource{lakes: []Lake{{Name: "potsdam", UUID: "map:potsdam-uuid"}}}
	resolver := &mapResolver{values: map[string]string{"potsdam-uuid": potsdamUUID}}

	lakes, err := Collect(context.Background(), Sources{source}, resolver)
	require.NoError(t, err)

	require.Len(t, lakes, 1)
	assert.Equal(t, potsdamUUID, lakes[0].UUID)
}

func TestCollectFailsOnUnresolvablePlaceholder(t *testing.T) {
	source := &staticSource{lakes: []Lake{{Name: "potsdam", UUID: "map:missing"}}}
	resolver := &mapResolver{values: map[string]string{}}

	_, err := Collect(context.Background(), Sources{source}, resolver)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "map:missing")
}

func TestDecodeLakes(t *testing.T) {
	source := map[string]any{
		"lakes": []any{
			map[string]any{"name": "potsdam", "uuid": potsdamUUID, "variation": "Stadtbad Babelsberg"},
			map[string]any{"name": "woog", "uuid": woogUUID},
		},
	}

	lakes, err := DecodeLakes(source)
	require.NoError(t, err)

	require.Len(t, lakes, 2)
	assert.Equal(t, Lake{Name: "potsdam", UUID: potsdamUUID, Variation: "Stadtbad Babelsberg"}, lakes[0])
	assert.Equal(t, Lake{Name: "woog", UUID: woogUUID}, lakes[1])
}

func TestDecodeLakesEmptyDocument(t *testing.T) {
	lakes, err := DecodeLakes(map[string]any{})
	require.NoError(t, err)
	assert.Empty(t, lakes)
}
