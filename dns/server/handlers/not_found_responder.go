package handlers

import (
	"github.com/cloudfoundry/bosh-utils/logger"
	"github.com/miekg/dns"
)

// NotFoundResponder terminates the chain: it never defers and answers every
// query with an authoritative name error, the original question echoed back.
type NotFoundResponder struct {
	logger logger.Logger
	logTag string
}

func NewNotFoundResponder(logger logger.Logger) NotFoundResponder {
	return NotFoundResponder{
		logger: logger,
		logTag: "NotFoundResponder",
	}
}

func (n NotFoundResponder) Answer(request *dns.Msg) *dns.Msg {
	n.logger.Debug(n.logTag, "authoritative name error for query %d", request.Id)

	responseMsg := &dns.Msg{}
	responseMsg.SetRcode(request, dns.RcodeNameError)
	responseMsg.Authoritative = true
	responseMsg.RecursionAvailable = true
	return responseMsg
}
