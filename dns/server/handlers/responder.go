package handlers

import (
	"github.com/miekg/dns"
)

//go:generate counterfeiter . Responder

// Responder is one strategy in the resolution chain. Returning nil means the
// responder cannot answer this query and the next one in the chain should be
// tried.
type Responder interface {
	Answer(request *dns.Msg) *dns.Msg
}
