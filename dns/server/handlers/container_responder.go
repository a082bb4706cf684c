package handlers

import (
	"net"

	"vnet-dns/dns/server/addresses"

	"github.com/cloudfoundry/bosh-utils/logger"
	"github.com/miekg/dns"
)

//go:generate counterfeiter . AddressLookup

// AddressLookup exposes the membership service's view of which addresses a
// container hostname (or alias) currently holds.
type AddressLookup interface {
	LookupAllocations(name string) []addresses.Allocation
}

type ContainerResponder struct {
	lookup AddressLookup
	ttl    uint32
	logger logger.Logger
	logTag string
}

func NewContainerResponder(lookup AddressLookup, ttl uint32, logger logger.Logger) ContainerResponder {
	return ContainerResponder{
		lookup: lookup,
		ttl:    ttl,
		logger: logger,
		logTag: "ContainerResponder",
	}
}

func (c ContainerResponder) Answer(request *dns.Msg) *dns.Msg {
	if len(request.Question) == 0 {
		return nil
	}

	question := request.Question[0]

	switch question.Qtype {
	case dns.TypeA, dns.TypeAAAA:
		return c.answerHostQuestion(request, question)
	case dns.TypeNS, dns.TypeCNAME, dns.TypeSOA, dns.TypePTR, dns.TypeMX,
		dns.TypeTXT, dns.TypeSRV, dns.TypeAXFR, dns.TypeIXFR, dns.TypeANY:
		return c.respond(request, dns.RcodeNotImplemented, nil)
	default:
		return c.respond(request, dns.RcodeFormatError, nil)
	}
}

func (c ContainerResponder) answerHostQuestion(request *dns.Msg, question dns.Question) *dns.Msg {
	allocations := c.lookup.LookupAllocations(question.Name)
	if len(allocations) == 0 {
		// unknown here may still resolve upstream; let the chain fall
		// through instead of answering NXDOMAIN
		return nil
	}

	answers := []dns.RR{}
	for _, allocation := range allocations {
		switch question.Qtype {
		case dns.TypeA:
			ip := net.ParseIP(allocation.IP)
			if ip == nil || ip.To4() == nil {
				return c.corruptAllocation(request, question.Name, allocation.IP)
			}
			answers = append(answers, &dns.A{
				Hdr: dns.RR_Header{
					Name:   question.Name,
					Rrtype: dns.TypeA,
					Class:  dns.ClassINET,
					Ttl:    c.ttl,
				},
				A: ip,
			})
		case dns.TypeAAAA:
			if allocation.IPv6 == "" {
				continue
			}
			ip := net.ParseIP(allocation.IPv6)
			if ip == nil {
				return c.corruptAllocation(request, question.Name, allocation.IPv6)
			}
			answers = append(answers, &dns.AAAA{
				Hdr: dns.RR_Header{
					Name:   question.Name,
					Rrtype: dns.TypeAAAA,
					Class:  dns.ClassINET,
					Ttl:    c.ttl,
				},
				AAAA: ip,
			})
		}
	}

	// an AAAA query for a live IPv4-only name answers success with no
	// records: guest resolvers treat NXDOMAIN on AAAA as total failure even
	// when an A record exists, NODATA lets them fall back to IPv4
	return c.respond(request, dns.RcodeSuccess, answers)
}

func (c ContainerResponder) corruptAllocation(request *dns.Msg, name, address string) *dns.Msg {
	c.logger.Error(c.logTag, "corrupt allocation record for %s: %q is not an IP address", name, address)
	return c.respond(request, dns.RcodeServerFailure, nil)
}

func (c ContainerResponder) respond(request *dns.Msg, rcode int, answers []dns.RR) *dns.Msg {
	responseMsg := &dns.Msg{}
	responseMsg.SetRcode(request, rcode)
	responseMsg.Answer = answers
	responseMsg.Authoritative = true
	responseMsg.RecursionAvailable = true
	return responseMsg
}
