package handlers_test

import (
	"errors"
	"net"
	"time"

	"vnet-dns/dns/server/handlers"
	"vnet-dns/dns/server/handlers/handlersfakes"
	"vnet-dns/dns/server/internal/internalfakes"

	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/cloudfoundry/bosh-utils/logger/loggerfakes"
	"github.com/miekg/dns"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ChainHandler", func() {
	var (
		fakeWriter   *internalfakes.FakeResponseWriter
		fakeLogger   *loggerfakes.FakeLogger
		fakeClock    *fakeclock.FakeClock
		fakeMetrics  *handlersfakes.FakeMetricsReporter
		first        *handlersfakes.FakeResponder
		second       *handlersfakes.FakeResponder
		terminal     *handlersfakes.FakeResponder
		chainHandler handlers.ChainHandler
		request      *dns.Msg
	)

	BeforeEach(func() {
		fakeWriter = &internalfakes.FakeResponseWriter{}
		fakeWriter.RemoteAddrReturns(&net.UDPAddr{})
		fakeLogger = &loggerfakes.FakeLogger{}
		fakeClock = fakeclock.NewFakeClock(time.Now())
		fakeMetrics = &handlersfakes.FakeMetricsReporter{}
		first = &handlersfakes.FakeResponder{}
		second = &handlersfakes.FakeResponder{}
		terminal = &handlersfakes.FakeResponder{}

		chainHandler = handlers.NewChainHandler(
			[]handlers.Responder{first, second, terminal},
			fakeClock,
			fakeMetrics,
			fakeLogger,
		)

		request = &dns.Msg{}
		request.SetQuestion("app1.internal.", dns.TypeA)
		request.Id = 7
	})

	It("writes the first answer produced and stops", func() {
		response := &dns.Msg{}
		response.SetReply(request)
		first.AnswerReturns(response)

		chainHandler.ServeDNS(fakeWriter, request)

		Expect(first.AnswerCallCount()).To(Equal(1))
		Expect(second.AnswerCallCount()).To(Equal(0))
		Expect(terminal.AnswerCallCount()).To(Equal(0))

		Expect(fakeWriter.WriteMsgCallCount()).To(Equal(1))
		Expect(fakeWriter.WriteMsgArgsForCall(0)).To(Equal(response))
	})

	It("falls through deferring responders in order", func() {
		response := &dns.Msg{}
		response.SetRcode(request, dns.RcodeNameError)
		first.AnswerReturns(nil)
		second.AnswerReturns(nil)
		terminal.AnswerReturns(response)

		chainHandler.ServeDNS(fakeWriter, request)

		Expect(first.AnswerCallCount()).To(Equal(1))
		Expect(second.AnswerCallCount()).To(Equal(1))
		Expect(terminal.AnswerCallCount()).To(Equal(1))
		Expect(fakeWriter.WriteMsgArgsForCall(0)).To(Equal(response))
	})

	It("reports each written response to the metrics reporter", func() {
		response := &dns.Msg{}
		response.SetReply(request)
		first.AnswerReturns(response)

		chainHandler.ServeDNS(fakeWriter, request)

		Expect(fakeMetrics.ReportCallCount()).To(Equal(1))
		reportedRequest, reportedResponse := fakeMetrics.ReportArgsForCall(0)
		Expect(reportedRequest).To(Equal(request))
		Expect(reportedResponse).To(Equal(response))
	})

	It("answers server failure if every responder defers", func() {
		chainHandler.ServeDNS(fakeWriter, request)

		Expect(fakeWriter.WriteMsgCallCount()).To(Equal(1))
		written := fakeWriter.WriteMsgArgsForCall(0)
		Expect(written.Rcode).To(Equal(dns.RcodeServerFailure))
		Expect(written.Id).To(Equal(request.Id))
	})

	It("logs write failures", func() {
		response := &dns.Msg{}
		response.SetReply(request)
		first.AnswerReturns(response)
		fakeWriter.WriteMsgReturns(&net.OpError{Op: "write", Err: errors.New("broken pipe")})

		chainHandler.ServeDNS(fakeWriter, request)

		Expect(fakeLogger.ErrorCallCount()).To(Equal(1))
	})

	Context("over UDP with a large response", func() {
		var response *dns.Msg

		BeforeEach(func() {
			response = &dns.Msg{}
			response.SetReply(request)
			for i := 0; i < 50; i++ {
				response.Answer = append(response.Answer, &dns.A{
					Hdr: dns.RR_Header{
						Name:   "app1.internal.",
						Rrtype: dns.TypeA,
						Class:  dns.ClassINET,
						Ttl:    5,
					},
					A: net.ParseIP("10.183.0.2"),
				})
			}
			first.AnswerReturns(response)
		})

		It("sets the compress flag", func() {
			chainHandler.ServeDNS(fakeWriter, request)

			written := fakeWriter.WriteMsgArgsForCall(0)
			Expect(written.Compress).To(BeTrue())
			Expect(response.Compress).To(BeFalse())
		})

		It("leaves TCP responses uncompressed", func() {
			fakeWriter.RemoteAddrReturns(&net.TCPAddr{})

			chainHandler.ServeDNS(fakeWriter, request)

			written := fakeWriter.WriteMsgArgsForCall(0)
			Expect(written.Compress).To(BeFalse())
		})
	})
})
