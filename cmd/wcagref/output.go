package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/wcagref"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// render writes v in the requested format. Text output comes from text
// so each command controls its human-readable layout.
func render(w io.Writer, format string, v any, text func() string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		s := text()
		if s == "" {
			return nil
		}
		_, err := fmt.Fprintln(w, s)
		return err
	}
	return wcagref.Errorf(wcagref.EINVALID, "unknown output format %q", format)
}

// fail reports err on stderr in the CLI's error style and returns it.
func fail(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", wcagref.ErrorMessage(err))
	return err
}
