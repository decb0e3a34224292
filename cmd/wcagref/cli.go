package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/wcagref"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Format    string
	Source    string
	SavedAt   time.Time
	Dataset   *wcagref.Dataset
	Reference wcagref.ReferenceService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Data    string `env:"WCAGREF_DATA" help:"Directory of JSON partitions to use instead of the bundled dataset"`
	DB      string `name:"db" env:"WCAGREF_DB" help:"SQLite database to load the dataset from"`
	Format  string `short:"o" enum:"text,json,yaml" default:"text" env:"WCAGREF_FORMAT" help:"Output format (text, json, yaml)"`
	Verbose bool   `short:"v" help:"Log lookups to stderr"`

	Criterion  CriterionCmd  `cmd:"" help:"Show a success criterion"`
	Technique  TechniqueCmd  `cmd:"" help:"Show a technique"`
	Link       LinkCmd       `cmd:"" help:"Print the URL of a criterion or technique"`
	List       ListCmd       `cmd:"" help:"List success criteria"`
	Techniques TechniquesCmd `cmd:"" help:"List techniques"`
	Export     ExportCmd     `cmd:"" help:"Export the dataset as JSON partitions or SQLite"`
	Info       InfoCmd       `cmd:"" help:"Show dataset versions, counts and fingerprint"`
}

// CriterionCmd is the "criterion" subcommand.
type CriterionCmd struct {
	Version string `arg:"" help:"WCAG version (2.0, 2.1, 2.2)"`
	Number  string `arg:"" help:"Criterion number, e.g. 1.4.3"`
}

// TechniqueCmd is the "technique" subcommand.
type TechniqueCmd struct {
	Version string `arg:"" help:"WCAG version (2.0, 2.1, 2.2)"`
	Code    string `arg:"" help:"Technique code, e.g. G57"`
}

// LinkCmd groups the "link" subcommands.
type LinkCmd struct {
	Criterion LinkCriterionCmd `cmd:"" help:"Print the recommendation URL of a criterion"`
	Technique LinkTechniqueCmd `cmd:"" help:"Print the documentation URL of a technique"`
}

// LinkCriterionCmd is the "link criterion" subcommand.
type LinkCriterionCmd struct {
	Version string `arg:"" help:"WCAG version (2.0, 2.1, 2.2)"`
	Number  string `arg:"" help:"Criterion number, e.g. 1.4.3"`
}

// LinkTechniqueCmd is the "link technique" subcommand.
type LinkTechniqueCmd struct {
	Version string `arg:"" help:"WCAG version (2.0, 2.1, 2.2)"`
	Code    string `arg:"" help:"Technique code, e.g. G57"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Version string `arg:"" help:"WCAG version (2.0, 2.1, 2.2)"`
	Chapter int    `short:"c" help:"Only criteria under this principle"`
	Section int    `short:"s" help:"Only criteria under this guideline"`
	Level   string `short:"l" help:"Only criteria at this level (A, AA, AAA)"`
}

// TechniquesCmd is the "techniques" subcommand.
type TechniquesCmd struct {
	Version string `arg:"" help:"WCAG version (2.0, 2.1, 2.2)"`
	Group   string `short:"g" help:"Only techniques of this group prefix, e.g. ARIA"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Kind   string `arg:"" enum:"json,sqlite" help:"Export target (json, sqlite)"`
	Output string `arg:"" help:"Output directory (json) or database file (sqlite)"`
}

// InfoCmd is the "info" subcommand.
type InfoCmd struct{}
