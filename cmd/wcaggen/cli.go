package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/wcagref"
	"github.com/fwojciec/wcagref/scrape"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Output      string        `arg:"" help:"Output directory for the JSON partitions, e.g. bundled/data"`
	DB          string        `name:"db" help:"Also save the dataset to this SQLite database"`
	Versions    []string      `short:"V" name:"version" help:"Versions to generate (repeatable, default: all)"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	Retries     int           `default:"3" help:"Retries per page with exponential backoff from 1s"`
	RPS         float64       `name:"rps" default:"2" help:"Requests per second per host (0 disables limiting)"`
	Timeout     time.Duration `short:"t" default:"30s" help:"Fetch timeout per page"`
	Preview     bool          `short:"p" help:"Fetch and validate without writing anything"`
	Verbose     bool          `short:"v" help:"Log every fetch"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Generator *scrape.Generator
	Writers   []wcagref.DatasetWriter
}

// GenerateCmd handles the generate operation.
type GenerateCmd struct {
	Versions []wcagref.Version
	Preview  bool
}
