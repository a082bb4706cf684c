package handlers

import (
	"net"
	"time"

	"code.cloudfoundry.org/clock"
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	"github.com/miekg/dns"
)

// UDPExchanger performs one upstream exchange over a fresh UDP socket bound
// to an ephemeral port. The wait for the reply races a timer; whichever loses
// is torn down before Exchange returns, so no socket or read outlives a call.
type UDPExchanger struct {
	timeout time.Duration
	clock   clock.Clock
}

func NewUDPExchanger(timeout time.Duration, clock clock.Clock) UDPExchanger {
	return UDPExchanger{
		timeout: timeout,
		clock:   clock,
	}
}

type exchangeResult struct {
	msg *dns.Msg
	err error
}

func (e UDPExchanger) Exchange(packed []byte, nameserver string) (*dns.Msg, time.Duration, error) {
	start := e.clock.Now()

	conn, err := net.Dial("udp", nameserver)
	if err != nil {
		return nil, e.clock.Since(start), bosherr.WrapErrorf(err, "dialing %s", nameserver)
	}
	defer conn.Close() //nolint:errcheck

	if _, err := conn.Write(packed); err != nil {
		return nil, e.clock.Since(start), bosherr.WrapErrorf(err, "sending query to %s", nameserver)
	}

	replies := make(chan exchangeResult, 1)
	go awaitReply(conn, replies)

	timer := e.clock.NewTimer(e.timeout)
	defer timer.Stop()

	select {
	case reply := <-replies:
		if reply.err != nil {
			return nil, e.clock.Since(start), reply.err
		}
		return reply.msg, e.clock.Since(start), nil
	case <-timer.C():
		// closing the socket unblocks the reader; drain it so the read
		// is finished, not orphaned, by the time we move on
		conn.Close() //nolint:errcheck
		<-replies
		return nil, e.clock.Since(start), bosherr.Errorf("timed out waiting for %s", nameserver)
	}
}

func awaitReply(conn net.Conn, replies chan<- exchangeResult) {
	buffer := make([]byte, dns.MaxMsgSize)

	n, err := conn.Read(buffer)
	if err != nil {
		replies <- exchangeResult{err: bosherr.WrapError(err, "reading upstream reply")}
		return
	}

	reply := &dns.Msg{}
	if err := reply.Unpack(buffer[:n]); err != nil {
		replies <- exchangeResult{err: bosherr.WrapError(err, "unpacking upstream reply")}
		return
	}

	replies <- exchangeResult{msg: reply}
}
