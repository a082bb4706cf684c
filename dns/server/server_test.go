package server_test

import (
	"errors"
	"time"

	"vnet-dns/dns/server"
	"vnet-dns/dns/server/serverfakes"

	"github.com/cloudfoundry/bosh-utils/logger/loggerfakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Server", func() {
	var (
		fakeServer   *serverfakes.FakeDNSServer
		fakeTCP      *serverfakes.FakeDNSServer
		fakeUpcheck  *serverfakes.FakeUpcheck
		fakeLogger   *loggerfakes.FakeLogger
		shutdownChan chan struct{}
		stopServing  chan struct{}
	)

	BeforeEach(func() {
		fakeLogger = &loggerfakes.FakeLogger{}
		shutdownChan = make(chan struct{})
		stopServing = make(chan struct{})

		blockUntilStopped := func() error {
			<-stopServing
			return nil
		}

		fakeServer = &serverfakes.FakeDNSServer{}
		fakeServer.ListenAndServeStub = blockUntilStopped
		fakeTCP = &serverfakes.FakeDNSServer{}
		fakeTCP.ListenAndServeStub = blockUntilStopped

		fakeUpcheck = &serverfakes.FakeUpcheck{}
	})

	AfterEach(func() {
		close(stopServing)
	})

	run := func(s server.Server) chan error {
		runErrors := make(chan error, 1)
		go func() {
			defer GinkgoRecover()
			runErrors <- s.Run()
		}()
		return runErrors
	}

	It("stays up until the shutdown channel closes, then shuts every listener down", func() {
		s := server.New(
			[]server.DNSServer{fakeServer, fakeTCP},
			[]server.Upcheck{fakeUpcheck},
			time.Second,
			shutdownChan,
			fakeLogger,
		)

		runErrors := run(s)

		Eventually(fakeUpcheck.IsUpCallCount).Should(BeNumerically(">=", 1))
		Consistently(runErrors).ShouldNot(Receive())

		close(shutdownChan)

		var err error
		Eventually(runErrors).Should(Receive(&err))
		Expect(err).NotTo(HaveOccurred())
		Expect(fakeServer.ShutdownContextCallCount()).To(Equal(1))
		Expect(fakeTCP.ShutdownContextCallCount()).To(Equal(1))
	})

	It("retries upchecks until they pass", func() {
		fakeUpcheck.IsUpReturnsOnCall(0, errors.New("not yet"))
		fakeUpcheck.IsUpReturnsOnCall(1, errors.New("still not"))

		s := server.New(
			[]server.DNSServer{fakeServer},
			[]server.Upcheck{fakeUpcheck},
			5*time.Second,
			shutdownChan,
			fakeLogger,
		)

		runErrors := run(s)

		Eventually(fakeUpcheck.IsUpCallCount).Should(BeNumerically(">=", 3))

		close(shutdownChan)
		Eventually(runErrors).Should(Receive(BeNil()))
	})

	It("returns the listener's error when a listener fails to bind", func() {
		bindError := errors.New("address in use")
		fakeServer.ListenAndServeStub = nil
		fakeServer.ListenAndServeReturns(bindError)

		fakeUpcheck.IsUpReturns(errors.New("never up"))

		s := server.New(
			[]server.DNSServer{fakeServer},
			[]server.Upcheck{fakeUpcheck},
			5*time.Second,
			shutdownChan,
			fakeLogger,
		)

		Eventually(run(s)).Should(Receive(Equal(bindError)))
	})

	It("times out when upchecks never pass", func() {
		fakeUpcheck.IsUpReturns(errors.New("never up"))

		s := server.New(
			[]server.DNSServer{fakeServer},
			[]server.Upcheck{fakeUpcheck},
			100*time.Millisecond,
			shutdownChan,
			fakeLogger,
		)

		Eventually(run(s)).Should(Receive(MatchError("timed out waiting for server to bind")))
	})

	It("proceeds without upchecks, logging a warning", func() {
		s := server.New(
			[]server.DNSServer{fakeServer},
			nil,
			time.Second,
			shutdownChan,
			fakeLogger,
		)

		runErrors := run(s)

		Eventually(fakeLogger.WarnCallCount).Should(Equal(1))

		close(shutdownChan)
		Eventually(runErrors).Should(Receive(BeNil()))
	})

	It("propagates a shutdown error", func() {
		shutdownError := errors.New("would not stop")
		fakeServer.ShutdownContextReturns(shutdownError)

		s := server.New(
			[]server.DNSServer{fakeServer},
			[]server.Upcheck{fakeUpcheck},
			time.Second,
			shutdownChan,
			fakeLogger,
		)

		runErrors := run(s)
		Eventually(fakeUpcheck.IsUpCallCount).Should(BeNumerically(">=", 1))

		close(shutdownChan)
		Eventually(runErrors).Should(Receive(Equal(shutdownError)))
	})
})
