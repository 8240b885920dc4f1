package registry

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

type lakesDocument struct {
	Lakes []Lake `mapstructure:"lakes"`
}

// DecodeLakes maps loosely-typed YAML content onto Lake records.
func DecodeLakes(source map[string]any) ([]Lake, error) {
	var doc lakesDocument

	decoderConfig := &mapstructure.DecoderConfig{Metadata: nil, ZeroFields: true, Result: &doc}
	decoder, _ := mapstructure.NewDecoder(decoderConfig)

	if err := decoder.Decode(source); err != nil {
		return nil, err
	}

	return doc.Lakes, nil
}

// LakesFromFiles reads every readable lake file the iterator yields.
func LakesFromFiles(files FileIterator) ([]Lake, error) {
	var lakes []Lake

	err := files.ForEach(func(f File) error {
		readable, _ := f.IsReadable()
		if !readable {
			return nil
		}

		mapStructuredData, err := f.ToMap()
		if err != nil {
			return fmt.Errorf("%s: %w", f.FullyQualifiedName(), err)
		}

		decoded, err := DecodeLakes(mapStructuredData)
		if err != nil {
			return fmt.Errorf("%s: %w", f.FullyQualifiedName(), err)
		}

		lakes = append(lakes, decoded...)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return lakes, nil
}
