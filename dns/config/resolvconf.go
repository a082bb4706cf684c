package config

import (
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

// NewResolvConfSource reads nameserver entries from a resolv.conf-style file.
func NewResolvConfSource(fs boshsys.FileSystem, path string) NameserverSource {
	return resolvConfSource{
		fs:   fs,
		path: path,
	}
}

type resolvConfSource struct {
	fs   boshsys.FileSystem
	path string
}

func (s resolvConfSource) Read() ([]string, error) {
	contents, err := s.fs.ReadFileString(s.path)
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "reading %s", s.path)
	}

	nameservers := []string{}
	for _, line := range strings.Split(contents, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "nameserver" {
			continue
		}

		nameservers = append(nameservers, fields[1])
	}

	return nameservers, nil
}
