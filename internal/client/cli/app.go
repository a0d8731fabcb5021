// Package cli implements the interactive line-protocol client used in
// the lab: a small REPL that registers student accounts and
// authenticates against the lab-access server over TLS.
package cli

import (
	"bufio"
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"os"

	"github.com/dmitrijs2005/labkeeper/internal/client/config"
)

// App holds the client state: configuration, console input and one
// persistent connection to the server.
type App struct {
	config *config.Config
	reader *bufio.Reader
	conn   net.Conn
}

func NewApp(cfg *config.Config) *App {
	return &App{
		config: cfg,
		reader: bufio.NewReader(os.Stdin),
	}
}

// connect dials the server lazily and keeps the connection for
// subsequent commands, mirroring how the desktop clients hold one
// socket per session.
func (a *App) connect() (net.Conn, error) {
	if a.conn != nil {
		return a.conn, nil
	}

	conn, err := tls.Dial("tcp", a.config.ServerAddr, &tls.Config{
		InsecureSkipVerify: a.config.InsecureSkipVerify,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", a.config.ServerAddr, err)
	}

	a.conn = conn
	return conn, nil
}

// sendCommand writes one request frame and reads one response frame.
func (a *App) sendCommand(frame string) (string, error) {
	conn, err := a.connect()
	if err != nil {
		return "", err
	}

	if _, err := conn.Write([]byte(frame)); err != nil {
		return "", err
	}

	buf := make([]byte, 1024)
	n, err := conn.Read(buf)
	if err != nil {
		return "", err
	}

	return string(buf[:n]), nil
}

// Close releases the server connection if one was established.
func (a *App) Close() error {
	if a.conn == nil {
		return nil
	}
	return a.conn.Close()
}

// Run starts the interactive loop and blocks until the user exits.
func Run(ctx context.Context, cfg *config.Config) {
	a := NewApp(cfg)
	defer a.Close()

	printlnFn("Lab access client (type 'help' for commands)")
	runREPL(ctx, a, a.reader)
}
