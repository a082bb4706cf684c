package main

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"code.cloudfoundry.org/clock"

	"vnet-dns/dns/api"
	dnsconfig "vnet-dns/dns/config"
	"vnet-dns/dns/server"
	"vnet-dns/dns/server/addresses"
	"vnet-dns/dns/server/handlers"
	"vnet-dns/dns/server/monitoring"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/miekg/dns"
	"github.com/prometheus/client_golang/prometheus"
)

// probeDomain is reserved for upchecks: its chain has only the terminal
// responder, so a healthy server always answers it with NXDOMAIN.
const probeDomain = "probe.vnet-dns."

func parseFlags() (string, error) {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	if configPath == "" {
		return "", errors.New("--config is a required flag")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return "", bosherr.WrapError(err, fmt.Sprintf("Unable to find config file at '%s'", configPath))
	}

	return configPath, nil
}

func main() {
	os.Exit(mainExitCode())
}

func mainExitCode() int {
	logger := boshlog.NewAsyncWriterLogger(boshlog.LevelDebug, os.Stdout)
	logTag := "main"
	// logger is rebound once the configured level is known; flush whichever
	// logger is current on exit
	defer func() {
		logger.FlushTimeout(5 * time.Second) //nolint:errcheck
	}()

	configPath, err := parseFlags()
	if err != nil {
		logger.Error(logTag, err.Error())
		return 1
	}

	fs := boshsys.NewOsFileSystem(logger)

	config, err := dnsconfig.LoadFromFile(configPath, fs)
	if err != nil {
		logger.Error(logTag, err.Error())
		return 1
	}

	logLevel, err := config.GetLogLevel()
	if err != nil {
		logger.Error(logTag, err.Error())
		return 1
	}
	logger = boshlog.NewAsyncWriterLogger(logLevel, os.Stdout)

	bindAddress := fmt.Sprintf("%s:%d", config.Address, config.Port)

	source := dnsconfig.NewResolvConfSource(fs, config.ResolvConfPath)
	reader := dnsconfig.NewNameserverReader(source, []string{bindAddress, net.JoinHostPort("127.0.0.1", fmt.Sprintf("%d", config.Port))})
	if err := dnsconfig.ConfigureNameservers(reader, &config); err != nil {
		logger.Error(logTag, "configuring nameservers: %s", err.Error())
		return 1
	}
	logger.Debug(logTag, "forwarding to %v", config.Nameservers)

	pool, err := addresses.NewPoolFromCIDR(config.PoolCIDR, config.PoolSize)
	if err != nil {
		logger.Error(logTag, err.Error())
		return 1
	}
	registry := addresses.NewRegistry(pool)

	clock := clock.NewClock()
	shutdown := make(chan struct{})

	var recorder handlers.MetricsReporter = monitoring.NopRecorder{}
	if config.Metrics.Enabled {
		promRegistry := prometheus.NewRegistry()
		recorder = monitoring.NewQueryRecorder(promRegistry)

		metricsServer := monitoring.NewMetricsServer(
			net.JoinHostPort(config.Metrics.Address, fmt.Sprintf("%d", config.Metrics.Port)),
			promRegistry,
			logger,
		)
		go func() {
			if err := metricsServer.Run(shutdown); err != nil {
				logger.Error(logTag, "metrics server: %s", err.Error())
			}
		}()
	}

	exchanger := handlers.NewUDPExchanger(time.Duration(config.UpstreamTimeout), clock)
	notFound := handlers.NewNotFoundResponder(logger)

	chain := handlers.NewChainHandler(
		[]handlers.Responder{
			handlers.NewContainerResponder(registry, config.RecordTTL, logger),
			handlers.NewForwardResponder(config.Nameservers, exchanger, logger),
			notFound,
		},
		clock,
		recorder,
		logger,
	)

	mux := dns.NewServeMux()
	mux.Handle(".", chain)
	mux.Handle(probeDomain, handlers.NewChainHandler([]handlers.Responder{notFound}, clock, recorder, logger))

	if config.API.Port != 0 {
		apiMux := http.NewServeMux()
		apiMux.Handle("/registrations", api.NewRegistrationsHandler(registry, logger))
		apiMux.Handle("/allocations", api.NewAllocationsHandler(registry))

		apiServer := &http.Server{
			Addr:    net.JoinHostPort("127.0.0.1", fmt.Sprintf("%d", config.API.Port)),
			Handler: apiMux,
		}
		go func() {
			if err := apiServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				logger.Error(logTag, "api server: %s", err.Error())
			}
		}()
		go func() {
			<-shutdown
			apiServer.Close() //nolint:errcheck
		}()
	}

	dnsServer := server.New(
		[]server.DNSServer{
			&dns.Server{Addr: bindAddress, Net: "tcp", Handler: mux},
			&dns.Server{Addr: bindAddress, Net: "udp", Handler: mux, UDPSize: 65535},
		},
		[]server.Upcheck{
			server.NewNXDomainUpcheck(bindAddress, probeDomain, "udp", logger),
			server.NewNXDomainUpcheck(bindAddress, probeDomain, "tcp", logger),
		},
		time.Duration(config.BindTimeout),
		shutdown,
		logger,
	)

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigterm
		if allFree := registry.Disable(); !allFree {
			logger.Warn(logTag, "shutting down with addresses still allocated")
		}
		close(shutdown)
	}()

	if err := dnsServer.Run(); err != nil {
		logger.Error(logTag, err.Error())
		return 1
	}

	return 0
}
