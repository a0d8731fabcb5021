// Package tcp terminates the encrypted client transport: it binds a TCP
// endpoint wrapped in server-side TLS, accepts connections indefinitely
// and runs one connection handler per accepted connection.
package tcp

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"sync"

	"github.com/dmitrijs2005/labkeeper/internal/logging"
	"github.com/dmitrijs2005/labkeeper/internal/server/accounts"
	"github.com/dmitrijs2005/labkeeper/internal/server/config"
)

// maxFrameSize bounds one request frame. A single read of up to this many
// bytes is treated as a complete command; no multi-frame reassembly is
// performed.
const maxFrameSize = 1024

type Server struct {
	addr              string
	certFile          string
	keyFile           string
	maxFailedAttempts int
	service           *accounts.Service
	logger            logging.Logger
	wg                sync.WaitGroup

	mu       sync.Mutex
	listener net.Listener
}

func NewServer(cfg *config.Config, service *accounts.Service, l logging.Logger) *Server {
	return &Server{
		addr:              cfg.BindAddr,
		certFile:          cfg.CertFile,
		keyFile:           cfg.KeyFile,
		maxFailedAttempts: cfg.MaxFailedAttempts,
		service:           service,
		logger:            l.With("module", "tcp_server"),
	}
}

// Run loads the server certificate, binds the TLS listener and accepts
// connections until ctx is cancelled. A certificate or bind failure is
// returned to the caller and is fatal to the process; per-connection
// errors never end the accept loop.
func (s *Server) Run(ctx context.Context) error {

	cert, err := tls.LoadX509KeyPair(s.certFile, s.keyFile)
	if err != nil {
		return fmt.Errorf("loading certificate: %w", err)
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}

	listener, err := tls.Listen("tcp", s.addr, tlsConfig)
	if err != nil {
		return fmt.Errorf("binding %s: %w", s.addr, err)
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping listener...")
		listener.Close()
	}()

	s.logger.Info(ctx, "Listening", "address", s.addr)

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.wg.Wait()
				return nil
			}
			s.logger.Warn(ctx, "accept error", "error", err.Error())
			continue
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConn(ctx, conn)
		}()
	}
}

// Addr returns the bound listener address, or nil if the server is not
// listening yet. Useful when binding to port 0.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// peerHost extracts the client address used as the lockout key. The port
// changes between connections from the same machine, so only the host
// part is kept.
func peerHost(addr net.Addr) string {
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}
