package api

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"vnet-dns/dns/server/addresses"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

//go:generate counterfeiter . AddressRegistry

type AddressRegistry interface {
	Register(hostname string, aliases []string, ipv6 net.IP) (net.IP, error)
	Deregister(hostname string) (net.IP, bool)
	LookupAllocations(name string) []addresses.Allocation
}

// RegistrationsHandler is the membership service's write surface: it turns
// HTTP registration calls into allocator operations.
type RegistrationsHandler struct {
	registry AddressRegistry
	logger   boshlog.Logger
	logTag   string
}

func NewRegistrationsHandler(registry AddressRegistry, logger boshlog.Logger) *RegistrationsHandler {
	return &RegistrationsHandler{
		registry: registry,
		logger:   logger,
		logTag:   "RegistrationsHandler",
	}
}

func (h *RegistrationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut, http.MethodPost:
		h.register(w, r)
	case http.MethodDelete:
		h.deregister(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *RegistrationsHandler) register(w http.ResponseWriter, r *http.Request) {
	var request RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "malformed registration body")
		return
	}

	if request.Hostname == "" {
		writeError(w, http.StatusUnprocessableEntity, "hostname is required")
		return
	}

	var ipv6 net.IP
	if request.IPv6 != "" {
		ipv6 = net.ParseIP(request.IPv6)
		if ipv6 == nil || ipv6.To4() != nil {
			writeError(w, http.StatusUnprocessableEntity, "ipv6 is not an IPv6 address")
			return
		}
	}

	ip, err := h.registry.Register(request.Hostname, request.Aliases, ipv6)
	if err != nil {
		if errors.Is(err, addresses.ErrPoolExhausted) || errors.Is(err, addresses.ErrPoolDisabled) {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}

		h.logger.Error(h.logTag, "registering %s: %s", request.Hostname, err.Error())
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Debug(h.logTag, "registered %s as %s", request.Hostname, ip)

	writeJSON(w, http.StatusOK, RegistrationResponse{
		Hostname: request.Hostname,
		IP:       ip.String(),
	})
}

func (h *RegistrationsHandler) deregister(w http.ResponseWriter, r *http.Request) {
	hostname := r.URL.Query().Get("hostname")
	if hostname == "" {
		writeError(w, http.StatusUnprocessableEntity, "hostname is required")
		return
	}

	ip, found := h.registry.Deregister(hostname)
	if !found {
		writeError(w, http.StatusNotFound, "unknown hostname")
		return
	}

	h.logger.Debug(h.logTag, "deregistered %s, freed %s", hostname, ip)

	writeJSON(w, http.StatusOK, RegistrationResponse{
		Hostname: hostname,
		IP:       ip.String(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
