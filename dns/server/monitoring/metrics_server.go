package monitoring

import (
	"net"
	"net/http"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsServer exposes the prometheus registry over HTTP until the shutdown
// channel closes.
type MetricsServer struct {
	listenAddress string
	gatherer      prometheus.Gatherer
	logger        boshlog.Logger
	logTag        string
}

func NewMetricsServer(listenAddress string, gatherer prometheus.Gatherer, logger boshlog.Logger) *MetricsServer {
	return &MetricsServer{
		listenAddress: listenAddress,
		gatherer:      gatherer,
		logger:        logger,
		logTag:        "MetricsServer",
	}
}

func (m *MetricsServer) Run(shutdown chan struct{}) error {
	listener, err := net.Listen("tcp", m.listenAddress)
	if err != nil {
		return bosherr.WrapError(err, "setting up the metrics listener")
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))
	httpServer := &http.Server{Handler: mux}

	m.logger.Info(m.logTag, "metrics endpoint listening on %s", listener.Addr())

	serveErrors := make(chan error, 1)
	go func() {
		serveErrors <- httpServer.Serve(listener)
	}()

	select {
	case <-shutdown:
		if err := httpServer.Close(); err != nil {
			return bosherr.WrapError(err, "tearing down the metrics listener")
		}
		return nil
	case err := <-serveErrors:
		return bosherr.WrapError(err, "serving metrics")
	}
}
