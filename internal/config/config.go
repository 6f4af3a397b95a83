package config

import (
	"errors"
	"fmt"
)

const (
	DefaultDirCount  = 10
	DefaultLinkCount = 10
)

var (
	ErrMissingOutput = errors.New("output file is required")
	ErrNegativeCount = errors.New("count cannot be negative")
)

// Config holds application configuration
type Config struct {
	OutputPath string
	DirCount   int
	LinkCount  int
	DBPath     string // empty = do not seed a database
	Verify     bool
	Preview    bool
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	return &Config{
		DirCount:  DefaultDirCount,
		LinkCount: DefaultLinkCount,
	}
}

// WithOutputPath sets the bookmark file to write
func (c *Config) WithOutputPath(path string) *Config {
	c.OutputPath = path
	return c
}

// WithCounts sets the number of folders and links per folder
func (c *Config) WithCounts(dirCount, linkCount int) *Config {
	c.DirCount = dirCount
	c.LinkCount = linkCount
	return c
}

// WithDBPath sets a database to seed with the generated bookmarks
func (c *Config) WithDBPath(path string) *Config {
	c.DBPath = path
	return c
}

// Validate checks that the configuration can be run
func (c *Config) Validate() error {
	if c.OutputPath == "" {
		return ErrMissingOutput
	}
	if c.DirCount < 0 {
		return fmt.Errorf("dircount %d: %w", c.DirCount, ErrNegativeCount)
	}
	if c.LinkCount < 0 {
		return fmt.Errorf("linkcount %d: %w", c.LinkCount, ErrNegativeCount)
	}
	return nil
}

// Links returns the total number of links the configuration generates
func (c *Config) Links() int {
	return c.DirCount * c.LinkCount
}
