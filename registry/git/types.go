package git

import (
	"sync"

	goGit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"
	"github.com/woog-life/potsdam-booking-scraper/config"
	"github.com/woog-life/potsdam-booking-scraper/filetypes"
)

type Source struct {
	Config      config.GitConfig
	Repo        *goGit.Repository
	PublicKeys  *ssh.PublicKeys
	YamlContext filetypes.YamlContext
	EnableTrace bool

	commitsLock sync.Mutex
}

func (s *Source) Order() int {
	return s.Config.Order
}

type fileItrWrapper struct {
	RepoUri     string
	Files       *object.FileIter
	YamlContext filetypes.YamlContext
}

type fileWrapper struct {
	RepoUri     string
	File        *object.File
	YamlContext filetypes.YamlContext
}

type fileBlob struct {
	Blob *object.Blob
}
