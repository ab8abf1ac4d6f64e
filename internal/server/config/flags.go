package config

import (
	"flag"
	"os"
	"time"

	"github.com/uelms-project/uelms/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN
//	-o int      connection timeout, seconds
//	-m string   administrative notification mailbox
//	-u string   bootstrap admin username
//	-p string   bootstrap admin password
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with flags owned by other components
// (the CLI subcommands parse their own).
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-o", "-m", "-u", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	connTimeout := fs.Int("o", int(config.ConnTimeout.Seconds()), "connection timeout (in seconds)")
	fs.StringVar(&config.AdminNotifyEmail, "m", config.AdminNotifyEmail, "admin notification mailbox")
	fs.StringVar(&config.BootstrapAdminUser, "u", config.BootstrapAdminUser, "bootstrap admin username")
	fs.StringVar(&config.BootstrapAdminPassword, "p", config.BootstrapAdminPassword, "bootstrap admin password")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ConnTimeout = time.Duration(*connTimeout) * time.Second
}
