package internal

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import "github.com/miekg/dns"

//counterfeiter:generate -o internalfakes/fake_response_writer.go --fake-name FakeResponseWriter . responseWriter

type responseWriter interface { //nolint:unused
	dns.ResponseWriter
}
