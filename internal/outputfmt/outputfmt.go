package outputfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/quailyquaily/cronsay/internal/records"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text|json|yaml)", raw)
	}
}

var errorColor = color.New(color.FgRed)

// Write renders records. A single record is written as an object in json
// and yaml; more than one as a list. Text output prints one line per record
// and prefixes the expression only when there is more than one.
func Write(w io.Writer, format Format, recs []records.Record) error {
	switch format {
	case FormatJSON:
		var v any = recs
		if len(recs) == 1 {
			v = recs[0]
		}
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, strings.TrimSpace(string(b)))
		return err

	case FormatYAML:
		var v any = recs
		if len(recs) == 1 {
			v = recs[0]
		}
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, string(b))
		return err

	case FormatText, "":
		multi := len(recs) > 1
		for _, rec := range recs {
			line := rec.Description
			if rec.Failed() {
				line = errorColor.Sprint("error: " + strings.TrimSpace(rec.Error))
			}
			if multi {
				line = rec.Expression + ": " + line
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
