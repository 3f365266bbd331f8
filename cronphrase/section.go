package cronphrase

import (
	"strconv"
	"strings"
)

type sectionShape int

const (
	shapeWildcard  sectionShape = iota // *
	shapeSingle                        // v
	shapeRange                         // v-n
	shapeStepFrom                      // v/s, up to the field max
	shapeStepRange                     // v-n/s
	shapeStepEvery                     // */s
)

type section struct {
	shape sectionShape
	from  uint64
	to    uint64
	step  uint64
}

// classifySection parses one comma-separated fragment of a field.
// Values are range checked as soon as they are read, so an out of range
// start wins over a malformed tail.
func classifySection(k Kind, raw string) (section, error) {
	if raw == "*" {
		return section{shape: shapeWildcard}, nil
	}

	tokens := Tokenize(raw, k)
	if len(tokens) == 0 {
		return section{}, malformedError(k, raw)
	}

	from, ok := parseNumber(tokens[0])
	if !ok {
		if len(tokens) == 3 && tokens[0] == "*" && tokens[1] == "/" {
			if step, ok := parseNumber(tokens[2]); ok {
				return section{shape: shapeStepEvery, step: step}, nil
			}
		}
		return section{}, malformedError(k, raw)
	}
	if err := k.inRange(from); err != nil {
		return section{}, err
	}

	switch len(tokens) {
	case 1:
		return section{shape: shapeSingle, from: from}, nil

	case 3:
		n, ok := parseNumber(tokens[2])
		if !ok {
			return section{}, malformedError(k, raw)
		}
		switch tokens[1] {
		case "/":
			return section{shape: shapeStepFrom, from: from, to: k.Max(), step: n}, nil
		case "-":
			// A reversed range wraps around: 22-2 is "from 22 through 2".
			if err := k.inRange(n); err != nil {
				return section{}, err
			}
			return section{shape: shapeRange, from: from, to: n}, nil
		}

	case 5:
		to, ok := parseNumber(tokens[2])
		if !ok {
			return section{}, malformedError(k, raw)
		}
		if err := k.inRange(to); err != nil {
			return section{}, err
		}
		step, ok := parseNumber(tokens[4])
		if !ok || tokens[1] != "-" || tokens[3] != "/" || to < from || step < 1 {
			return section{}, malformedError(k, raw)
		}
		return section{shape: shapeStepRange, from: from, to: to, step: step}, nil
	}
	return section{}, malformedError(k, raw)
}

func (s section) render(k Kind) string {
	switch s.shape {
	case shapeWildcard:
		return "every " + k.Name()
	case shapeSingle:
		return k.display(s.from)
	case shapeRange:
		return "every " + k.Name() + " from " + k.display(s.from) + " through " + k.display(s.to)
	case shapeStepFrom, shapeStepRange:
		return everyStep(k, s.step) + " from " + k.display(s.from) + " through " + k.display(s.to)
	case shapeStepEvery:
		return everyStep(k, s.step)
	default:
		return ""
	}
}

// everyStep drops the ordinal for a step of one: "*/1" reads "every hour".
func everyStep(k Kind, step uint64) string {
	if step == 1 {
		return "every " + k.Name()
	}
	return "every " + Ordinal(step) + " " + k.Name()
}

// Ordinal suffixes n by its last digit only, so 11 becomes "11st".
func Ordinal(n uint64) string {
	s := strconv.FormatUint(n, 10)
	switch n % 10 {
	case 1:
		return s + "st"
	case 2:
		return s + "nd"
	case 3:
		return s + "rd"
	default:
		return s + "th"
	}
}

func parseNumber(tok string) (uint64, bool) {
	if tok == "" || strings.TrimLeft(tok, "0123456789") != "" {
		return 0, false
	}
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
