// Package output dispatches scan results to the configured output format.
package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// Format is the output format requested by the user.
type Format string

// Output format constants supported by the --output flag.
const (
	FormatText  Format = "text"
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// Valid reports whether f is a supported output format.
func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatPlain, FormatJSON, FormatTable:
		return true
	}
	return false
}

// TextFormattable results know how to render themselves as human-readable text.
type TextFormattable interface {
	WriteText(w io.Writer) error
}

// PlainFormattable results know how to render themselves as plain text (one
// record per line). Used for piping output to other tools.
type PlainFormattable interface {
	WritePlain(w io.Writer) error
}

// TableFormattable results know how to render themselves as an ASCII table.
type TableFormattable interface {
	WriteTable(w io.Writer) error
}

// Write dispatches a result to the appropriate formatter. JSON uses
// json.Encoder with indentation; the other formats require the result to
// implement the matching interface.
func Write(w io.Writer, format Format, result any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case FormatText:
		tf, ok := result.(TextFormattable)
		if !ok {
			return fmt.Errorf("result type %T does not support text output", result)
		}
		return tf.WriteText(w)
	case FormatPlain:
		pf, ok := result.(PlainFormattable)
		if !ok {
			return fmt.Errorf("result type %T does not support plain output", result)
		}
		return pf.WritePlain(w)
	case FormatTable:
		tf, ok := result.(TableFormattable)
		if !ok {
			return fmt.Errorf("result type %T does not support table output", result)
		}
		return tf.WriteTable(w)
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}
