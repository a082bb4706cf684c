package server

import (
	"fmt"
	"math/rand"
	"net"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"github.com/miekg/dns"
)

//go:generate counterfeiter . Upcheck

type Upcheck interface {
	IsUp() error
}

// NXDomainUpcheck probes the server with a name nothing registers. A healthy
// chain lets the probe fall through to the terminal responder, so the only
// answer that proves the pipeline is wired end to end is NXDOMAIN.
type NXDomainUpcheck struct {
	target      string
	probeDomain string
	network     string
	logger      boshlog.Logger
	logTag      string
}

func NewNXDomainUpcheck(target, probeDomain, network string, logger boshlog.Logger) Upcheck {
	return NXDomainUpcheck{
		target:      target,
		probeDomain: probeDomain,
		network:     network,
		logger:      logger,
		logTag:      "upcheck",
	}
}

func (uc NXDomainUpcheck) IsUp() error {
	target, err := determineHost(uc.target)
	if err != nil {
		return uc.wrapError(err)
	}

	dnsClient := dns.Client{Net: uc.network}
	request := dns.Msg{
		Question: []dns.Question{
			{Name: uc.probeDomain, Qtype: dns.TypeA, Qclass: dns.ClassINET},
		},
	}
	request.Id = uint16(rand.Uint32()) //nolint:gosec

	uc.logger.Debug(uc.logTag, "sending probe %d for %s to %s over %s", request.Id, uc.probeDomain, target, uc.network)

	response, _, err := dnsClient.Exchange(&request, target)
	if err != nil {
		return uc.wrapError(err)
	}

	if response.Rcode != dns.RcodeNameError {
		return uc.wrapError(fmt.Errorf("expected NXDOMAIN for probe domain %s, got %s", uc.probeDomain, dns.RcodeToString[response.Rcode]))
	}

	return nil
}

func determineHost(target string) (string, error) {
	host, port, err := net.SplitHostPort(target)
	if err != nil {
		return "", err
	}

	if host == "0.0.0.0" {
		return net.JoinHostPort("127.0.0.1", port), nil
	}

	return target, nil
}

func (uc NXDomainUpcheck) wrapError(err error) error {
	return bosherr.WrapErrorf(err, "on %s", uc.network)
}
