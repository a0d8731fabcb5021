package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/labkeeper/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   TLS bind address (e.g., ":12345")
//	-d string   PostgreSQL DSN
//	-t string   server certificate file (PEM)
//	-k string   server private key file (PEM)
//	-r string   root directory for per-student folders
//	-m int      failed attempts before lockout
//	-w int      lockout window, seconds
//	-p int      generated one-time password length
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes
//     using flagx.FilterArgs, avoiding collisions with other components.
//   - The lockout window is accepted as an integer in seconds and then
//     converted to a time.Duration value.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-k", "-r", "-m", "-w", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.BindAddr, "a", config.BindAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.CertFile, "t", config.CertFile, "server certificate file")
	fs.StringVar(&config.KeyFile, "k", config.KeyFile, "server private key file")
	fs.StringVar(&config.StudentDirRoot, "r", config.StudentDirRoot, "student directory root")

	fs.IntVar(&config.MaxFailedAttempts, "m", config.MaxFailedAttempts, "failed attempts before lockout")
	lockoutWindow := fs.Int("w", int(config.LockoutWindow.Seconds()), "lockout window (in seconds)")
	fs.IntVar(&config.PasswordLength, "p", config.PasswordLength, "generated password length")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.LockoutWindow = time.Duration(*lockoutWindow) * time.Second
}
