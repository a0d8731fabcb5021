// Package config handles configuration for the client component.
package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/labkeeper/internal/flagx"
)

// Config holds runtime settings for the labkeeper client.
//
// Fields:
//   - ServerAddr: address of the lab-access server.
//   - InsecureSkipVerify: skip server certificate verification. The
//     reference lab deployment uses a self-signed certificate, so this
//     defaults to true; disable it when a trusted certificate is in place.
type Config struct {
	ServerAddr         string
	InsecureSkipVerify bool
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "127.0.0.1:12345"
	c.InsecureSkipVerify = true
}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   server address (e.g., "127.0.0.1:12345")
//	-s bool     verify the server certificate (strict mode)
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerAddr, "a", config.ServerAddr, "server address")
	strict := fs.Bool("s", !config.InsecureSkipVerify, "verify the server certificate")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.InsecureSkipVerify = !*strict
}

// LoadConfig builds a Config by applying defaults and overlaying
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)
	return cfg
}
