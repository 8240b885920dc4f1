package filetypes

import (
	"github.com/woog-life/potsdam-booking-scraper/sops"
)

type Decrypter interface {
	Decrypt(data []byte) ([]byte, error)
}

type YamlContext struct {
	Decrypter Decrypter
}

// SopsDecrypter passes encrypted lake files through SOPS, and everything
// else through untouched.
type SopsDecrypter struct{}

func (SopsDecrypter) Decrypt(data []byte) ([]byte, error) {
	return sops.DecryptYAML(data)
}
