package config

import (
	"flag"
	"fmt"
	"io"
)

// Parse builds a Config from command-line arguments (without the program name).
// Flags may be placed before or after the output file.
// Returns flag.ErrHelp when help was requested.
func Parse(name string, args []string, output io.Writer) (*Config, error) {
	cfg := NewConfig()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.DirCount, "dircount", DefaultDirCount, "number of directories to generate")
	fs.IntVar(&cfg.LinkCount, "linkcount", DefaultLinkCount, "number of bookmarks to generate per directory")
	fs.StringVar(&cfg.DBPath, "db", "", "also seed a SQLite bookmarks database at this path")
	fs.BoolVar(&cfg.Verify, "verify", false, "parse the written file back and check its structure")
	fs.BoolVar(&cfg.Preview, "preview", false, "show the generated bookmarks in a terminal tree view")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s <outputfile> [--dircount N] [--linkcount N] [--db PATH] [--verify] [--preview]\n", name)
		fs.PrintDefaults()
	}

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}

	switch len(positional) {
	case 0:
		fs.Usage()
		return nil, ErrMissingOutput
	case 1:
		cfg.WithOutputPath(positional[0])
	default:
		fs.Usage()
		return nil, fmt.Errorf("unexpected argument %q", positional[1])
	}

	if err := cfg.Validate(); err != nil {
		fs.Usage()
		return nil, err
	}
	return cfg, nil
}
