package config

import "net"

//go:generate counterfeiter . NameserverSource

// NameserverSource supplies the host's upstream nameserver list, one entry
// per server, ports optional.
type NameserverSource interface {
	Read() ([]string, error)
}

// NewNameserverReader wraps a source and drops entries a forwarder must not
// use: loopback addresses (they would point back at this process), any of
// this server's own bind addresses, and blanks.
func NewNameserverReader(source NameserverSource, localAddresses []string) NameserverReader {
	return NameserverReader{
		source:         source,
		localAddresses: localAddresses,
	}
}

type NameserverReader struct {
	source         NameserverSource
	localAddresses []string
}

func (r NameserverReader) Get() ([]string, error) {
	nameservers, err := r.source.Read()
	if err != nil {
		return nil, err
	}

	validNameservers := []string{}
	for _, server := range nameservers {
		if r.isValid(server) {
			validNameservers = append(validNameservers, server)
		}
	}

	return AppendDefaultDNSPortIfMissing(validNameservers)
}

func (r NameserverReader) isValid(server string) bool {
	return server != "" &&
		!isLoopback(server) &&
		!r.isLocalAddress(server)
}

func (r NameserverReader) isLocalAddress(server string) bool {
	for _, local := range r.localAddresses {
		if local == server {
			return true
		}
	}

	return false
}

func isLoopback(server string) bool {
	host := server
	if h, _, err := net.SplitHostPort(server); err == nil {
		host = h
	}

	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// ConfigureNameservers fills in the config's nameserver list from the reader
// when none were pinned explicitly, then strips any excluded entries.
func ConfigureNameservers(reader NameserverReader, dnsConfig *Config) error {
	if dnsConfig == nil {
		return nil
	}

	if len(dnsConfig.Nameservers) == 0 {
		nameservers, err := reader.Get()
		if err != nil {
			return err
		}

		dnsConfig.Nameservers = nameservers
	}

	dnsConfig.Nameservers = withoutExcluded(dnsConfig.Nameservers, dnsConfig.ExcludedNameservers)

	return nil
}

func withoutExcluded(nameservers, excluded []string) []string {
	kept := []string{}
	for _, server := range nameservers {
		if !contains(excluded, server) {
			kept = append(kept, server)
		}
	}

	return kept
}

func contains(list []string, needle string) bool {
	for _, entry := range list {
		if entry == needle {
			return true
		}
	}

	return false
}
