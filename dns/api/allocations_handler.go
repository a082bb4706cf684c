package api

import (
	"net/http"
)

// AllocationsHandler is the read surface: it answers what addresses a name
// resolves to, aliases included.
type AllocationsHandler struct {
	registry AddressRegistry
}

func NewAllocationsHandler(registry AddressRegistry) *AllocationsHandler {
	return &AllocationsHandler{registry: registry}
}

func (h *AllocationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusUnprocessableEntity, "name is required")
		return
	}

	allocations := h.registry.LookupAllocations(name)
	if len(allocations) == 0 {
		writeError(w, http.StatusNotFound, "unknown name")
		return
	}

	records := make([]AllocationRecord, len(allocations))
	for i, allocation := range allocations {
		records[i] = AllocationRecord{
			IP:   allocation.IP,
			IPv6: allocation.IPv6,
		}
	}

	writeJSON(w, http.StatusOK, records)
}
