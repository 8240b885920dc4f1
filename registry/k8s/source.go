package k8s

import (
	"context"
	"errors"

	"github.com/woog-life/potsdam-booking-scraper/config"
	"github.com/woog-life/potsdam-booking-scraper/registry"
)

const DefaultConfigMapName = "lake-uuids"

// Source reads the `lake-uuids` ConfigMap directly instead of relying on
// env injection: each entry maps a lake name to its backend UUID.
type Source struct {
	Client *Client
	Config config.K8sConfig
}

func (s *Source) Order() int {
	return s.Config.Order
}

func (s *Source) Init(_ context.Context, _ config.Configuration, appConfig config.ApplicationConfiguration) error {
	s.Config = appConfig.Registry.K8s

	if s.Config.DefaultNamespace == "" {
		return errors.New("k8s lake source requires a default namespace")
	}
	if s.Config.ConfigMapName == "" {
		s.Config.ConfigMapName = DefaultConfigMapName
	}

	if s.Client == nil {
		client, err := NewClient(s.Config)
		if err != nil {
			return err
		}
		s.Client = client
	}

	return nil
}

func (s *Source) GetLakes(ctxt context.Context) ([]registry.Lake, error) {
	entries, err := s.Client.GetConfigMapEntries(ctxt, s.Config.DefaultNamespace, s.Config.ConfigMapName)
	if err != nil {
		return nil, err
	}

	lakes := make([]registry.Lake, 0, len(entries))
	for name, lakeUUID := range entries {
		lakes = append(lakes, registry.Lake{
			Name: name,
			UUID: lakeUUID,
		})
	}

	return lakes, nil
}

func (s *Source) Close() {
	// NOOP
}
