package filetypes

import (
	"fmt"
	"io"

	"github.com/woog-life/potsdam-booking-scraper/registry"
	"sigs.k8s.io/yaml"
)

func FromYamlToMap(f registry.File, ctx YamlContext) (map[string]any, error) {
	bytes, err := ToBytes(f)
	if err != nil {
		return nil, err
	}

	if ctx.Decrypter != nil {
		if bytes, err = ctx.Decrypter.Decrypt(bytes); err != nil {
			return nil, err
		}
	}

	var mapStructuredData map[string]any
	if e := yaml.Unmarshal(bytes, &mapStructuredData); e != nil {
		return nil, e
	}

	return mapStructuredData, nil
}

func ToBytes(f registry.File) ([]byte, error) {
	reader, err := f.Data().Reader()
	if err != nil {
		return nil, err
	}

	defer func(reader io.ReadCloser) {
		if e := reader.Close(); e != nil {
			fmt.Println(e)
		}
	}(reader)

	return io.ReadAll(reader)
}
