package config

import (
	"flag"
	"os"

	"picshelf/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-e string   base URL of the image listing endpoint (default from Config)
//	-d string   path of the local database file (default from Config)
//	-p int      images per grid page (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-e", "-d", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ListingEndpoint, "e", cfg.ListingEndpoint, "image listing endpoint")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "local database file")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "images per grid page")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
