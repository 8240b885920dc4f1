package registry

import (
	"context"
	"io"

	"github.com/woog-life/potsdam-booking-scraper/config"
)

type Sources []Source

// Source supplies lake definitions from one origin: the environment, a
// directory of YAML files, a git repository, or the cluster's ConfigMap.
type Source interface {
	Ordering
	Init(ctxt context.Context, envConfig config.Configuration, appConfig config.ApplicationConfiguration) error
	GetLakes(ctxt context.Context) ([]Lake, error)
	Close()
}

type Ordering interface {
	Order() int // lower is higher priority
}

// Lake is one scrape target. Variation names the bookable pool within the
// venue, e.g. "Stadtbad Babelsberg".
type Lake struct {
	Name      string `json:"name"`
	UUID      string `json:"uuid"`
	Variation string `json:"variation"`
}

type FileIterator interface {
	ForEach(f func(f File) error) error
}

type File interface {
	Name() string
	FullyQualifiedName() string

	IsReadable() (bool, string)
	Data() Blob
	ToMap() (map[string]any, error)
}

type Blob interface {
	Reader() (io.ReadCloser, error)
}
