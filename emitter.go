package main

import (
	"net"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// emitter holds a fixed set of pre-dialed UDP destinations and fans each
// outgoing datagram out to all of them. Send failures and partial sends
// are logged and counted, never fatal.
type emitter struct {
	conns      []*net.UDPConn
	log        *logrus.Logger
	sendErrors uint64
}

// newEmitter dials one UDP socket per non-zero port in ports, all
// addressed to ip. A port value of 0 is silently dropped, matching the
// configuration contract; if no ports survive, construction fails since
// a receiver with nowhere to send is a resource error, not a usage error.
func newEmitter(ip string, ports []int, log *logrus.Logger) (*emitter, error) {
	addr := net.ParseIP(ip)
	if addr == nil || addr.To4() == nil {
		return nil, errors.Errorf("destination %q is not a valid IPv4 address", ip)
	}

	e := &emitter{log: log}
	for _, port := range ports {
		if port == 0 {
			continue
		}
		conn, err := net.DialUDP("udp4", nil, &net.UDPAddr{IP: addr.To4(), Port: port})
		if err != nil {
			e.Close()
			return nil, errors.Wrapf(err, "dial udp %s:%d", ip, port)
		}
		e.conns = append(e.conns, conn)
	}
	if len(e.conns) == 0 {
		return nil, errors.New("no valid UDP ports configured")
	}
	return e, nil
}

// send writes payload to every destination, blocking. A failed or partial
// write is logged and counted rather than aborting the run.
func (e *emitter) send(payload []byte) {
	for _, conn := range e.conns {
		n, err := conn.Write(payload)
		switch {
		case err != nil:
			e.sendErrors++
			e.log.WithError(err).WithField("dest", conn.RemoteAddr()).Warn("udp send failed")
		case n != len(payload):
			e.sendErrors++
			e.log.WithFields(logrus.Fields{
				"dest": conn.RemoteAddr(),
				"sent": n,
				"want": len(payload),
			}).Warn("partial udp send")
		}
	}
}

func (e *emitter) Close() {
	for _, conn := range e.conns {
		conn.Close()
	}
}
