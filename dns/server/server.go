package server

import (
	"context"
	"errors"
	"sync"
	"time"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

//go:generate counterfeiter . DNSServer

type DNSServer interface {
	ListenAndServe() error
	ShutdownContext(context context.Context) error
}

// Server runs the UDP and TCP listeners as one unit: it waits for all of
// them to answer probes before declaring itself up, then blocks until the
// shutdown channel closes.
type Server struct {
	servers      []DNSServer
	upchecks     []Upcheck
	bindTimeout  time.Duration
	shutdownChan chan struct{}
	logger       boshlog.Logger
	logTag       string
}

func New(servers []DNSServer, upchecks []Upcheck, bindTimeout time.Duration, shutdownChan chan struct{}, logger boshlog.Logger) Server {
	return Server{
		servers:      servers,
		upchecks:     upchecks,
		bindTimeout:  bindTimeout,
		shutdownChan: shutdownChan,
		logger:       logger,
		logTag:       "server",
	}
}

func (s Server) Run() error {
	listenErrors := make(chan error)
	for _, server := range s.servers {
		go func(server DNSServer) {
			listenErrors <- server.ListenAndServe()
		}(server)
	}

	bound := make(chan struct{})
	s.awaitUpchecks(bound)

	select {
	case err := <-listenErrors:
		return err
	case <-time.After(s.bindTimeout):
		return errors.New("timed out waiting for server to bind")
	case <-bound:
		s.logger.Debug(s.logTag, "all listeners answering")
	}

	<-s.shutdownChan
	return s.shutdown()
}

func (s Server) awaitUpchecks(bound chan struct{}) {
	if len(s.upchecks) == 0 {
		s.logger.Warn(s.logTag, "proceeding immediately: no upchecks configured")
		close(bound)
		return
	}

	wg := &sync.WaitGroup{}
	wg.Add(len(s.upchecks))

	go func() {
		wg.Wait()
		close(bound)
	}()

	for _, upcheck := range s.upchecks {
		go func(upcheck Upcheck) {
			for {
				err := upcheck.IsUp()
				if err == nil {
					break
				}
				s.logger.Debug(s.logTag, "waiting for server to come up (%s)", err.Error())

				time.Sleep(50 * time.Millisecond)
			}

			wg.Done()
		}(upcheck)
	}
}

func (s Server) shutdown() error {
	s.logger.Info(s.logTag, "shutdown")

	shutdownErrors := make(chan error, len(s.servers))

	wg := &sync.WaitGroup{}
	wg.Add(len(s.servers))

	for _, server := range s.servers {
		go func(server DNSServer) {
			shutdownContext, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			shutdownErrors <- server.ShutdownContext(shutdownContext)
			wg.Done()
		}(server)
	}

	wg.Wait()
	close(shutdownErrors)

	for err := range shutdownErrors {
		if err != nil {
			return err
		}
	}

	return nil
}
