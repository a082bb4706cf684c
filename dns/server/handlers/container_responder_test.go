package handlers_test

import (
	testhelpers "vnet-dns/dns/internal/testhelpers/question_case_helpers"
	"vnet-dns/dns/server/addresses"
	"vnet-dns/dns/server/handlers"
	"vnet-dns/dns/server/handlers/handlersfakes"
	"vnet-dns/gomegadns"

	"github.com/cloudfoundry/bosh-utils/logger/loggerfakes"
	"github.com/miekg/dns"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ContainerResponder", func() {
	var (
		fakeLookup *handlersfakes.FakeAddressLookup
		fakeLogger *loggerfakes.FakeLogger
		responder  handlers.ContainerResponder
		request    *dns.Msg
	)

	BeforeEach(func() {
		fakeLookup = &handlersfakes.FakeAddressLookup{}
		fakeLogger = &loggerfakes.FakeLogger{}
		responder = handlers.NewContainerResponder(fakeLookup, 5, fakeLogger)

		request = &dns.Msg{}
		request.SetQuestion("app1.internal.", dns.TypeA)
		request.Id = 21
	})

	Context("A questions", func() {
		It("answers one A record per allocation", func() {
			fakeLookup.LookupAllocationsReturns([]addresses.Allocation{
				{IP: "10.183.0.2"},
				{IP: "10.183.0.7", IPv6: "fd07:b51a::7"},
			})

			response := responder.Answer(request)

			Expect(response).NotTo(BeNil())
			Expect(response.Id).To(Equal(request.Id))
			Expect(response.Rcode).To(Equal(dns.RcodeSuccess))
			Expect(response.Authoritative).To(BeTrue())
			Expect(response.Question).To(Equal(request.Question))
			Expect(response.Answer).To(HaveLen(2))
			Expect(response.Answer[0]).To(gomegadns.MatchResponse(gomegadns.Response{
				"name": "app1.internal.", "ip": "10.183.0.2", "ttl": 5,
			}))
			Expect(response.Answer[1]).To(gomegadns.MatchResponse(gomegadns.Response{
				"name": "app1.internal.", "ip": "10.183.0.7", "ttl": 5,
			}))

			Expect(fakeLookup.LookupAllocationsArgsForCall(0)).To(Equal("app1.internal."))
		})

		It("defers when the hostname has no allocations", func() {
			fakeLookup.LookupAllocationsReturns(nil)

			Expect(responder.Answer(request)).To(BeNil())
		})

		It("fails the query on a corrupt allocation record", func() {
			fakeLookup.LookupAllocationsReturns([]addresses.Allocation{
				{IP: "not-an-ip"},
			})

			response := responder.Answer(request)

			Expect(response).NotTo(BeNil())
			Expect(response.Rcode).To(Equal(dns.RcodeServerFailure))
			Expect(response.Answer).To(BeEmpty())
			Expect(fakeLogger.ErrorCallCount()).To(Equal(1))
		})

		It("fails the query when the IPv4 field holds an IPv6 literal", func() {
			fakeLookup.LookupAllocationsReturns([]addresses.Allocation{
				{IP: "fd07:b51a::2"},
			})

			response := responder.Answer(request)

			Expect(response).NotTo(BeNil())
			Expect(response.Rcode).To(Equal(dns.RcodeServerFailure))
			Expect(response.Answer).To(BeEmpty())
			Expect(fakeLogger.ErrorCallCount()).To(Equal(1))
		})
	})

	Context("AAAA questions", func() {
		BeforeEach(func() {
			request.SetQuestion("app1.internal.", dns.TypeAAAA)
		})

		It("answers one AAAA record per allocation carrying IPv6", func() {
			fakeLookup.LookupAllocationsReturns([]addresses.Allocation{
				{IP: "10.183.0.2"},
				{IP: "10.183.0.7", IPv6: "fd07:b51a::7"},
			})

			response := responder.Answer(request)

			Expect(response).NotTo(BeNil())
			Expect(response.Rcode).To(Equal(dns.RcodeSuccess))
			Expect(response.Answer).To(HaveLen(1))
			Expect(response.Answer[0]).To(gomegadns.MatchResponse(gomegadns.Response{
				"name": "app1.internal.", "ip": "fd07:b51a::7", "ttl": 5,
			}))
		})

		It("answers no-data success when the name exists without IPv6", func() {
			fakeLookup.LookupAllocationsReturns([]addresses.Allocation{
				{IP: "10.183.0.2"},
				{IP: "10.183.0.3"},
			})

			response := responder.Answer(request)

			Expect(response).NotTo(BeNil())
			Expect(response.Rcode).To(Equal(dns.RcodeSuccess))
			Expect(response.Answer).To(BeEmpty())
		})

		It("defers when the hostname has no allocations", func() {
			fakeLookup.LookupAllocationsReturns(nil)

			Expect(responder.Answer(request)).To(BeNil())
		})

		It("fails the query on a corrupt IPv6 record", func() {
			fakeLookup.LookupAllocationsReturns([]addresses.Allocation{
				{IP: "10.183.0.2", IPv6: "not-an-ip"},
			})

			response := responder.Answer(request)

			Expect(response.Rcode).To(Equal(dns.RcodeServerFailure))
		})
	})

	DescribeTable("recognized but unsupported question types",
		func(qtype uint16) {
			request.SetQuestion("app1.internal.", qtype)

			response := responder.Answer(request)

			Expect(response).NotTo(BeNil())
			Expect(response.Rcode).To(Equal(dns.RcodeNotImplemented))
			Expect(response.Answer).To(BeEmpty())
			Expect(fakeLookup.LookupAllocationsCallCount()).To(Equal(0))
		},
		Entry("NS", dns.TypeNS),
		Entry("CNAME", dns.TypeCNAME),
		Entry("SOA", dns.TypeSOA),
		Entry("PTR", dns.TypePTR),
		Entry("MX", dns.TypeMX),
		Entry("TXT", dns.TypeTXT),
		Entry("SRV", dns.TypeSRV),
		Entry("AXFR", dns.TypeAXFR),
		Entry("IXFR", dns.TypeIXFR),
		Entry("ANY", dns.TypeANY),
	)

	It("answers format error for unknown question types", func() {
		request.SetQuestion("app1.internal.", dns.TypeNAPTR)

		response := responder.Answer(request)

		Expect(response).NotTo(BeNil())
		Expect(response.Rcode).To(Equal(dns.RcodeFormatError))
	})

	It("defers on questionless requests", func() {
		Expect(responder.Answer(&dns.Msg{})).To(BeNil())
	})

	Context("backed by a real registry", func() {
		It("answers regardless of question casing", func() {
			registry := addresses.NewRegistry(addresses.NewPool(0x0AB70002, 10))
			_, err := registry.Register("app1.internal", nil, nil)
			Expect(err).NotTo(HaveOccurred())

			responder := handlers.NewContainerResponder(registry, 5, fakeLogger)

			var casedName string
			request := testhelpers.SetQuestion(&dns.Msg{}, &casedName, "app1.internal.", dns.TypeA)

			response := responder.Answer(request)

			Expect(response).NotTo(BeNil())
			Expect(response.Rcode).To(Equal(dns.RcodeSuccess))
			Expect(response.Answer).To(HaveLen(1))
			Expect(response.Answer[0]).To(gomegadns.MatchResponse(gomegadns.Response{
				"name": casedName, "ip": "10.183.0.2", "ttl": 5,
			}))
		})
	})
})
