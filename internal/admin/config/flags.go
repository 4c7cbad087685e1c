package config

import (
	"flag"
	"os"

	"github.com/dhanya-017/infinart-admin/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the authority
//	-d string   path to the local console database
//
// Only the flags handled here are parsed, via flagx.FilterArgs, so the
// config-file flags (-c/-config) stay out of the way.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthorityAddr, "a", cfg.AuthorityAddr, "base URL of the authority")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local console database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
