package monitoring

import (
	"github.com/miekg/dns"
	"github.com/prometheus/client_golang/prometheus"
)

// QueryRecorder counts answered queries by question type and response code.
type QueryRecorder struct {
	queries *prometheus.CounterVec
}

func NewQueryRecorder(registerer prometheus.Registerer) *QueryRecorder {
	queries := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vnet_dns",
			Name:      "queries_total",
			Help:      "Total number of DNS queries answered, by question type and response code.",
		},
		[]string{"qtype", "rcode"},
	)
	registerer.MustRegister(queries)

	return &QueryRecorder{queries: queries}
}

func (r *QueryRecorder) Report(request, response *dns.Msg) {
	qtype := "none"
	if len(request.Question) > 0 {
		qtype = dns.TypeToString[request.Question[0].Qtype]
	}

	r.queries.WithLabelValues(qtype, dns.RcodeToString[response.Rcode]).Inc()
}

// NopRecorder is used when metrics are disabled.
type NopRecorder struct{}

func (NopRecorder) Report(request, response *dns.Msg) {}
