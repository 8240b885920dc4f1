package file

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/woog-life/potsdam-booking-scraper/config"
	"github.com/woog-life/potsdam-booking-scraper/filetypes"
	"github.com/woog-life/potsdam-booking-scraper/registry"
)

func (s *Source) Init(_ context.Context, _ config.Configuration, appConfig config.ApplicationConfiguration) error {
	s.Config = appConfig.Registry.File
	s.YamlContext = filetypes.YamlContext{
		Decrypter: filetypes.SopsDecrypter{},
	}

	log.Debug().Msgf("Reading lake files from %s", s.Config.Path)
	return nil
}

func (s *Source) GetLakes(_ context.Context) ([]registry.Lake, error) {
	return registry.LakesFromFiles(fileItrWrapper{
		DirPath:     s.Config.Path,
		YamlContext: s.YamlContext,
	})
}

func (s *Source) Close() {
	// NOOP
}

func (itr fileItrWrapper) ForEach(handler func(f registry.File) error) error {
	entries, err := os.ReadDir(itr.DirPath)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		wrapper := fileWrapper{
			FileName:    entry.Name(),
			Path:        path.Join(itr.DirPath, entry.Name()),
			YamlContext: itr.YamlContext,
		}

		if e := handler(wrapper); e != nil {
			return e
		}
	}

	return nil
}

func (g fileWrapper) Name() string {
	return g.FileName
}

func (g fileWrapper) IsReadable() (bool, string) {
	suffix := filepath.Ext(g.Name())
	if suffix != ".yml" && suffix != ".yaml" {
		return false, ""
	}
	return true, suffix
}

func (g fileWrapper) ToMap() (map[string]any, error) {
	return filetypes.FromYamlToMap(g, g.YamlContext)
}

func (g fileWrapper) FullyQualifiedName() string {
	return g.Path
}

func (g fileWrapper) Data() registry.Blob {
	return fileBlob{Path: g.Path}
}

func (f fileBlob) Reader() (io.ReadCloser, error) {
	return os.Open(f.Path)
}
