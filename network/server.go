// Package network is a transport stub for exchanging encoded game chains
// between two peers over TCP. Payloads are opaque bytes: the transport
// never parses or validates a chain, and nothing in the ledger depends on
// it.
package network

import (
	"fmt"
	"io"
	"net"
	"sync"
	"time"
)

// Server listens for incoming chain payloads. Each connection carries one
// payload, terminated by the sender closing its end.
type Server struct {
	listener net.Listener
	payloads chan []byte

	closeOnce sync.Once
	done      chan struct{}
}

// Listen starts a server on addr ("host:port", port 0 picks a free one).
func Listen(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	s := &Server{
		listener: listener,
		payloads: make(chan []byte, 16),
		done:     make(chan struct{}),
	}
	go s.serve()
	return s, nil
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Payloads returns the channel on which received payloads are delivered.
func (s *Server) Payloads() <-chan []byte {
	return s.payloads
}

// Close stops accepting connections and unblocks pending deliveries.
func (s *Server) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.listener.Close()
	})
	return err
}

func (s *Server) serve() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		go s.receive(conn)
	}
}

func (s *Server) receive(conn net.Conn) {
	defer conn.Close()
	payload, err := io.ReadAll(conn)
	if err != nil || len(payload) == 0 {
		return
	}
	select {
	case s.payloads <- payload:
	case <-s.done:
	}
}

// Send delivers one payload to the server at addr and closes the
// connection.
func Send(addr string, payload []byte, timeout time.Duration) error {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()
	if _, err := conn.Write(payload); err != nil {
		return fmt.Errorf("send payload to %s: %w", addr, err)
	}
	return nil
}
