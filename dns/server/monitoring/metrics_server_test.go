package monitoring_test

import (
	"fmt"
	"io"
	"net/http"

	"vnet-dns/dns/internal/testhelpers"
	"vnet-dns/dns/server/monitoring"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"github.com/miekg/dns"
	"github.com/prometheus/client_golang/prometheus"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MetricsServer", func() {
	var (
		registry  *prometheus.Registry
		server    *monitoring.MetricsServer
		port      int
		shutdown  chan struct{}
		runErrors chan error
	)

	BeforeEach(func() {
		var err error
		port, err = testhelpers.GetFreePort()
		Expect(err).NotTo(HaveOccurred())

		registry = prometheus.NewRegistry()
		logger := boshlog.NewLogger(boshlog.LevelNone)
		server = monitoring.NewMetricsServer(fmt.Sprintf("127.0.0.1:%d", port), registry, logger)

		shutdown = make(chan struct{})
		runErrors = make(chan error, 1)
		go func() {
			runErrors <- server.Run(shutdown)
		}()

		Expect(testhelpers.WaitForListeningTCP(port)).To(Succeed())
	})

	AfterEach(func() {
		select {
		case <-shutdown:
		default:
			close(shutdown)
			Eventually(runErrors).Should(Receive())
		}
	})

	It("serves registered metrics on /metrics", func() {
		recorder := monitoring.NewQueryRecorder(registry)
		request := &dns.Msg{}
		request.SetQuestion("app.internal.", dns.TypeA)
		response := &dns.Msg{}
		response.SetRcode(request, dns.RcodeSuccess)
		recorder.Report(request, response)

		httpResponse, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/metrics", port))
		Expect(err).NotTo(HaveOccurred())
		defer httpResponse.Body.Close() //nolint:errcheck

		Expect(httpResponse.StatusCode).To(Equal(http.StatusOK))

		body, err := io.ReadAll(httpResponse.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(body)).To(ContainSubstring(`vnet_dns_queries_total{qtype="A",rcode="NOERROR"} 1`))
	})

	It("errors when the listen address is already bound", func() {
		second := monitoring.NewMetricsServer(fmt.Sprintf("127.0.0.1:%d", port), registry, boshlog.NewLogger(boshlog.LevelNone))

		err := second.Run(make(chan struct{}))
		Expect(err).To(MatchError(ContainSubstring("setting up the metrics listener")))
	})

	It("stops serving when the shutdown channel closes", func() {
		close(shutdown)

		var err error
		Eventually(runErrors).Should(Receive(&err))
		Expect(err).NotTo(HaveOccurred())

		Eventually(func() error {
			_, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/metrics", port))
			return err
		}).Should(HaveOccurred())
	})
})
