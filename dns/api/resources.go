package api

type RegistrationRequest struct {
	Hostname string   `json:"hostname"`
	Aliases  []string `json:"aliases,omitempty"`
	IPv6     string   `json:"ipv6,omitempty"`
}

type RegistrationResponse struct {
	Hostname string `json:"hostname"`
	IP       string `json:"ip"`
}

type AllocationRecord struct {
	IP   string `json:"ip"`
	IPv6 string `json:"ipv6,omitempty"`
}
