package handlers_test

import (
	"vnet-dns/dns/server/handlers"
	"vnet-dns/gomegadns"

	"github.com/cloudfoundry/bosh-utils/logger/loggerfakes"
	"github.com/miekg/dns"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NotFoundResponder", func() {
	var responder handlers.NotFoundResponder

	BeforeEach(func() {
		responder = handlers.NewNotFoundResponder(&loggerfakes.FakeLogger{})
	})

	It("answers name error with the question echoed", func() {
		request := &dns.Msg{}
		request.SetQuestion("no-such-host.internal.", dns.TypeA)
		request.Id = 123

		response := responder.Answer(request)

		Expect(response).NotTo(BeNil())
		Expect(response.Id).To(Equal(uint16(123)))
		Expect(response.Rcode).To(Equal(dns.RcodeNameError))
		Expect(response.Question).To(Equal(request.Question))
		Expect(response.Answer).To(BeEmpty())
		Expect(response).To(gomegadns.HaveFlags("qr", "aa", "rd", "ra"))
	})

	It("never defers, even without a question", func() {
		response := responder.Answer(&dns.Msg{})

		Expect(response).NotTo(BeNil())
		Expect(response.Rcode).To(Equal(dns.RcodeNameError))
	})
})
