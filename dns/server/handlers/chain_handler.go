package handlers

import (
	"net"
	"time"

	"vnet-dns/dns/server/handlers/internal"

	"code.cloudfoundry.org/clock"
	"github.com/cloudfoundry/bosh-utils/logger"
	"github.com/miekg/dns"
)

//go:generate counterfeiter . MetricsReporter

type MetricsReporter interface {
	Report(request *dns.Msg, response *dns.Msg)
}

// ChainHandler resolves a query by trying each responder in order and writing
// the first answer produced. The chain is built with NotFoundResponder last,
// so every query gets a well-formed response.
type ChainHandler struct {
	responders []Responder
	clock      clock.Clock
	metrics    MetricsReporter
	logger     logger.Logger
	logTag     string
}

func NewChainHandler(responders []Responder, clock clock.Clock, metrics MetricsReporter, logger logger.Logger) ChainHandler {
	return ChainHandler{
		responders: responders,
		clock:      clock,
		metrics:    metrics,
		logger:     logger,
		logTag:     "ChainHandler",
	}
}

func (c ChainHandler) ServeDNS(responseWriter dns.ResponseWriter, request *dns.Msg) {
	before := c.clock.Now()

	internal.LogReceivedRequest(c.logger, c, c.logTag, request)

	for _, responder := range c.responders {
		response := responder.Answer(request)
		if response == nil {
			continue
		}

		c.writeResponse(responseWriter, request, response, before)
		return
	}

	// unreachable with a terminal responder configured; answer rather than
	// drop the query if that ever regresses
	response := &dns.Msg{}
	response.SetRcode(request, dns.RcodeServerFailure)
	c.writeResponse(responseWriter, request, response, before)
}

func (c ChainHandler) writeResponse(responseWriter dns.ResponseWriter, request, response *dns.Msg, before time.Time) {
	response = c.compressIfNeeded(responseWriter, request, response)

	c.metrics.Report(request, response)

	duration := c.clock.Since(before).Nanoseconds()
	internal.LogRequest(c.logger, c, c.logTag, duration, request, response, "")

	if err := responseWriter.WriteMsg(response); err != nil {
		c.logger.Error(c.logTag, "error writing response %s", err.Error())
	}
}

func (c ChainHandler) compressIfNeeded(responseWriter dns.ResponseWriter, request, response *dns.Msg) *dns.Msg {
	if _, ok := responseWriter.RemoteAddr().(*net.UDPAddr); ok {
		maxUDPSize := 512
		if opt := request.IsEdns0(); opt != nil {
			maxUDPSize = int(opt.UDPSize())
		}

		if response.Len() > maxUDPSize {
			c.logger.Debug(c.logTag, "setting compress flag on msg id: %d", request.Id)

			responseCopy := dns.Msg(*response)
			responseCopy.Compress = true

			return &responseCopy
		}
	}

	return response
}
