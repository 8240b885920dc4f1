package file

import (
	"github.com/woog-life/potsdam-booking-scraper/config"
	"github.com/woog-life/potsdam-booking-scraper/filetypes"
)

type Source struct {
	Config      config.FileConfig
	YamlContext filetypes.YamlContext
}

func (s *Source) Order() int {
	return s.Config.Order
}

type fileItrWrapper struct {
	DirPath     string
	YamlContext filetypes.YamlContext
}

type fileWrapper struct {
	FileName    string
	Path        string
	YamlContext filetypes.YamlContext
}

type fileBlob struct {
	Path string
}
