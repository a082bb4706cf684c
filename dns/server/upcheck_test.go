package server_test

import (
	"fmt"
	"net"

	"vnet-dns/dns/internal/testhelpers"
	"vnet-dns/dns/server"

	"github.com/cloudfoundry/bosh-utils/logger/loggerfakes"
	"github.com/miekg/dns"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NXDomainUpcheck", func() {
	var (
		fakeLogger *loggerfakes.FakeLogger
		port       int
		listeners  []*dns.Server
	)

	BeforeEach(func() {
		fakeLogger = &loggerfakes.FakeLogger{}

		var err error
		port, err = testhelpers.GetFreePort()
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		for _, listener := range listeners {
			listener.Shutdown() //nolint:errcheck
		}
		listeners = nil
	})

	startServer := func(network string, rcode int) {
		handler := dns.HandlerFunc(func(w dns.ResponseWriter, request *dns.Msg) {
			response := &dns.Msg{}
			response.SetRcode(request, rcode)
			w.WriteMsg(response) //nolint:errcheck
		})

		listener := &dns.Server{
			Addr:    fmt.Sprintf("127.0.0.1:%d", port),
			Net:     network,
			Handler: handler,
		}
		listeners = append(listeners, listener)

		go func() {
			defer GinkgoRecover()
			listener.ListenAndServe() //nolint:errcheck
		}()
	}

	target := func() string {
		return net.JoinHostPort("127.0.0.1", fmt.Sprintf("%d", port))
	}

	for _, network := range []string{"udp", "tcp"} {
		network := network

		Context(fmt.Sprintf("over %s", network), func() {
			It("is up when the probe gets NXDOMAIN", func() {
				startServer(network, dns.RcodeNameError)

				upcheck := server.NewNXDomainUpcheck(target(), "probe.vnet-dns.", network, fakeLogger)

				Eventually(upcheck.IsUp).Should(Succeed())
			})

			It("is down when the probe gets any other answer", func() {
				startServer(network, dns.RcodeSuccess)

				upcheck := server.NewNXDomainUpcheck(target(), "probe.vnet-dns.", network, fakeLogger)

				Eventually(upcheck.IsUp).Should(MatchError(ContainSubstring("expected NXDOMAIN")))
			})
		})
	}

	It("is down when nothing is listening", func() {
		upcheck := server.NewNXDomainUpcheck(target(), "probe.vnet-dns.", "udp", fakeLogger)

		Expect(upcheck.IsUp()).To(HaveOccurred())
	})

	It("rejects a target without a port", func() {
		upcheck := server.NewNXDomainUpcheck("127.0.0.1", "probe.vnet-dns.", "udp", fakeLogger)

		Expect(upcheck.IsUp()).To(HaveOccurred())
	})

	It("probes loopback when bound to the wildcard address", func() {
		startServer("udp", dns.RcodeNameError)

		upcheck := server.NewNXDomainUpcheck(fmt.Sprintf("0.0.0.0:%d", port), "probe.vnet-dns.", "udp", fakeLogger)

		Eventually(upcheck.IsUp).Should(Succeed())
	})
})
