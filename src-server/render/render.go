// Package render writes parse results in the formats the CLI and HTTP
// surfaces offer.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sylcal/src-server/ical"
	"sylcal/src-server/model"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatICS  Format = "ics"
)

var Formats = []Format{FormatJSON, FormatYAML, FormatICS}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q, want one of %v", s, Formats)
}

// Content-Type header value for f
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml; charset=utf-8"
	case FormatICS:
		return "text/calendar; charset=utf-8"
	}
	return "application/json; charset=utf-8"
}

// Write v to w in format f. ics accepts model.StructuredEvent and
// model.EventPayload only.
func Write(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatICS:
		switch event := v.(type) {
		case model.StructuredEvent:
			return ical.Encode(w, event)
		case model.EventPayload:
			return ical.Encode(w, event.StructuredEvent)
		}
		return fmt.Errorf("render: can't write %T as ics", v)
	}
	return fmt.Errorf("render: unknown format %q", f)
}
