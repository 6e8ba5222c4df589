// Package format renders CLI results as text, JSON or EDN.
package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// Texter is implemented by results that have a human-readable line format.
type Texter interface {
	WriteText(w io.Writer) error
}

// Envelope wraps structured output so callers can add fields later without
// breaking consumers that read .data.
type Envelope struct {
	Data any `json:"data"`
}

// Validate reports whether format names a supported output format.
func Validate(format string) error {
	switch format {
	case "", "text", "json", "edn":
		return nil
	default:
		return fmt.Errorf("unknown format: %s (want text|json|edn)", format)
	}
}

// Write writes v in the requested format.
//
// Supported formats:
// - text (default): v must implement Texter
// - json: {"data": v}
// - edn:  {:data v}
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "text":
		t, ok := v.(Texter)
		if !ok {
			return fmt.Errorf("format text: %T has no text form", v)
		}
		return t.WriteText(w)
	case "json":
		return WriteJSON(w, Envelope{Data: v}, pretty)
	case "edn":
		return WriteEDN(w, Envelope{Data: v}, pretty)
	default:
		return Validate(format)
	}
}

// WriteJSON writes strict JSON, one document per line unless pretty.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}
