package handlers

import (
	"time"

	"github.com/cloudfoundry/bosh-utils/logger"
	"github.com/miekg/dns"
)

//go:generate counterfeiter . Exchanger

// Exchanger sends one already-packed query to one upstream nameserver and
// waits, bounded, for its reply.
type Exchanger interface {
	Exchange(packed []byte, nameserver string) (*dns.Msg, time.Duration, error)
}

// ForwardResponder relays queries to upstream nameservers in strict list
// order. The nameserver list must already be filtered of loopback and self
// addresses; forwarding to ourselves would recurse without bound.
type ForwardResponder struct {
	nameservers []string
	exchanger   Exchanger
	logger      logger.Logger
	logTag      string
}

func NewForwardResponder(nameservers []string, exchanger Exchanger, logger logger.Logger) ForwardResponder {
	return ForwardResponder{
		nameservers: nameservers,
		exchanger:   exchanger,
		logger:      logger,
		logTag:      "ForwardResponder",
	}
}

func (f ForwardResponder) Answer(request *dns.Msg) *dns.Msg {
	if len(request.Question) == 0 || len(f.nameservers) == 0 {
		return nil
	}

	packed, err := request.Pack()
	if err != nil {
		f.logger.Error(f.logTag, "packing query %d: %s", request.Id, err.Error())
		return nil
	}

	for _, nameserver := range f.nameservers {
		// the first reply wins, negative answers included: the upstream
		// is authoritative for the forwarding step
		answer, rtt, err := f.exchanger.Exchange(packed, nameserver)
		if err != nil {
			f.logger.Info(f.logTag, "error forwarding query %d to %s: %s", request.Id, nameserver, err.Error())
			continue
		}

		f.logger.Debug(f.logTag, "%s answered query %d with %s in %s",
			nameserver, request.Id, dns.RcodeToString[answer.Rcode], rtt.String())
		return answer
	}

	f.logger.Info(f.logTag, "no response for query %d from any of %d nameservers", request.Id, len(f.nameservers))
	return nil
}
