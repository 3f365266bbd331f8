package cronphrase

import (
	"fmt"
	"strings"
)

// Field is one positional component of an expression.
type Field struct {
	Kind Kind
	Raw  string
}

// Analyze returns the field's phrase as it appears in the sentence,
// including its lead word ("past", "on", "in"). A wildcard returns "" for
// every field except Second.
func (f Field) Analyze() (string, error) {
	s := f.Kind.spec()
	if f.Raw == "*" && s.wildcardEmpty {
		return "", nil
	}
	phrase, err := formatField(f.Kind, f.Raw)
	if err != nil {
		return "", err
	}
	if s.lead == "" {
		return phrase, nil
	}
	return s.lead + " " + phrase, nil
}

// Expression is a cron expression split into its seven fields. A six
// field input gets "*" for Year.
type Expression struct {
	fields [fieldCount]Field
}

// Parse splits expr on whitespace. It only checks the field count; field
// contents are validated by Describe.
func Parse(expr string) (*Expression, error) {
	parts := strings.Fields(expr)
	if len(parts) != fieldCount-1 && len(parts) != fieldCount {
		return nil, fieldCountError(strings.TrimSpace(expr), len(parts))
	}
	if len(parts) == fieldCount-1 {
		parts = append(parts, "*")
	}
	e := &Expression{}
	for i, k := range Kinds() {
		e.fields[i] = Field{Kind: k, Raw: parts[i]}
	}
	return e, nil
}

// Describe parses and describes expr in one call.
func Describe(expr string) (string, error) {
	e, err := Parse(expr)
	if err != nil {
		return "", err
	}
	return e.Describe()
}

func (e *Expression) Field(k Kind) Field {
	if e == nil || k < 0 || int(k) >= fieldCount {
		return Field{Kind: k}
	}
	return e.fields[k]
}

func (e *Expression) Fields() []Field {
	if e == nil {
		return nil
	}
	out := make([]Field, fieldCount)
	copy(out, e.fields[:])
	return out
}

// String returns the normalized seven field form.
func (e *Expression) String() string {
	if e == nil {
		return ""
	}
	raws := make([]string, 0, fieldCount)
	for _, f := range e.fields {
		raws = append(raws, f.Raw)
	}
	return strings.Join(raws, " ")
}

// analyzeOrder decides which error is reported when several fields are
// invalid: the day fields come first.
var analyzeOrder = [fieldCount]Kind{DayOfMonth, DayOfWeek, Second, Minute, Hour, Month, Year}

// Describe builds the sentence. The first error in analyzeOrder is
// returned as is.
func (e *Expression) Describe() (string, error) {
	if e == nil {
		return "", fmt.Errorf("nil expression")
	}
	var phrases [fieldCount]string
	for _, k := range analyzeOrder {
		p, err := e.fields[k].Analyze()
		if err != nil {
			return "", err
		}
		phrases[k] = p
	}

	parts := make([]string, 0, 10)
	if clock, ok := e.clock(); ok {
		parts = append(parts, "At "+clock)
	} else {
		parts = append(parts, "At", phrases[Second], phrases[Minute], phrases[Hour])
	}
	parts = append(parts,
		phrases[DayOfMonth],
		e.dayConnective(phrases[DayOfMonth], phrases[DayOfWeek]),
		phrases[DayOfWeek],
		phrases[Month],
		phrases[Year],
	)

	words := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			words = append(words, p)
		}
	}
	return strings.Join(words, " ") + ".", nil
}

// dayConnective joins the two day phrases. With hour or month left open
// the day-of-week reads as a condition on the day-of-month.
func (e *Expression) dayConnective(dom, dow string) string {
	if dom == "" || dow == "" {
		return ""
	}
	if strings.HasPrefix(e.fields[Hour].Raw, "*") || strings.HasPrefix(e.fields[Month].Raw, "*") {
		return "if it's"
	}
	return "and"
}

// clock renders "HH:MM:SS" when second, minute and hour are each a plain
// number of at most two significant digits.
func (e *Expression) clock() (string, bool) {
	h, ok := plainClockValue(e.fields[Hour].Raw)
	if !ok {
		return "", false
	}
	m, ok := plainClockValue(e.fields[Minute].Raw)
	if !ok {
		return "", false
	}
	s, ok := plainClockValue(e.fields[Second].Raw)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s), true
}

// plainClockValue accepts any run of leading zeros followed by one or two
// digits: "5", "05", "0005", "17".
func plainClockValue(raw string) (uint64, bool) {
	if raw == "" {
		return 0, false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, false
		}
	}
	if len(strings.TrimLeft(raw, "0")) > 2 {
		return 0, false
	}
	v, ok := parseNumber(raw)
	return v, ok
}
