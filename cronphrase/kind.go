package cronphrase

import (
	"strconv"
	"strings"
)

// Kind identifies one of the seven positional cron fields.
type Kind int

const (
	Second Kind = iota
	Minute
	Hour
	DayOfMonth
	Month
	DayOfWeek
	Year
)

const fieldCount = 7

type kindSpec struct {
	name      string
	min       uint64
	max       uint64
	selection []string
	aliases   map[string]string

	// lead is put in front of a non-wildcard phrase ("past 5 minutes").
	lead string
	// bare fields do not repeat their name in front of value lists.
	bare bool
	// wildcardEmpty fields describe "*" as nothing at all.
	wildcardEmpty bool
}

var monthNames = []string{
	"",
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var weekdayNames = []string{
	"",
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var monthAliases = map[string]string{
	"jan": "1", "january": "1",
	"feb": "2", "february": "2",
	"mar": "3", "march": "3",
	"apr": "4", "april": "4",
	"may": "5",
	"jun": "6", "june": "6",
	"jul": "7", "july": "7",
	"aug": "8", "august": "8",
	"sep": "9", "september": "9",
	"oct": "10", "october": "10",
	"nov": "11", "november": "11",
	"dec": "12", "december": "12",
}

var weekdayAliases = map[string]string{
	"sun": "1", "sunday": "1",
	"mon": "2", "monday": "2",
	"tue": "3", "tues": "3", "tuesday": "3",
	"wed": "4", "wednesday": "4",
	"thu": "5", "thurs": "5", "thursday": "5",
	"fri": "6", "friday": "6",
	"sat": "7", "saturday": "7",
}

var kindSpecs = [fieldCount]kindSpec{
	Second:     {name: "second", min: 0, max: 59},
	Minute:     {name: "minute", min: 0, max: 59, lead: "past", wildcardEmpty: true},
	Hour:       {name: "hour", min: 0, max: 23, lead: "past", wildcardEmpty: true},
	DayOfMonth: {name: "day-of-month", min: 1, max: 31, lead: "on", wildcardEmpty: true},
	Month: {
		name: "month", min: 1, max: 12,
		selection: monthNames, aliases: monthAliases,
		lead: "in", bare: true, wildcardEmpty: true,
	},
	DayOfWeek: {
		name: "day-of-week", min: 1, max: 7,
		selection: weekdayNames, aliases: weekdayAliases,
		lead: "on", bare: true, wildcardEmpty: true,
	},
	Year: {name: "year", min: 1970, max: 2100, lead: "in", wildcardEmpty: true},
}

// Kinds returns every field kind in expression order.
func Kinds() []Kind {
	return []Kind{Second, Minute, Hour, DayOfMonth, Month, DayOfWeek, Year}
}

func (k Kind) spec() kindSpec {
	if k < 0 || int(k) >= fieldCount {
		return kindSpec{name: "unknown"}
	}
	return kindSpecs[k]
}

func (k Kind) Name() string   { return k.spec().name }
func (k Kind) Min() uint64    { return k.spec().min }
func (k Kind) Max() uint64    { return k.spec().max }
func (k Kind) String() string { return k.Name() }

// Selection returns the display-name table indexed by value, or nil when
// the field displays plain numbers. Index 0 is an unused placeholder.
func (k Kind) Selection() []string {
	sel := k.spec().selection
	if sel == nil {
		return nil
	}
	out := make([]string, len(sel))
	copy(out, sel)
	return out
}

// ConvertIfWord maps a calendar name to its numeric string. Anything it
// does not recognise is returned unchanged.
func (k Kind) ConvertIfWord(token string) string {
	aliases := k.spec().aliases
	if aliases == nil {
		return token
	}
	if v, ok := aliases[strings.ToLower(token)]; ok {
		return v
	}
	return token
}

func (k Kind) inRange(v uint64) error {
	s := k.spec()
	if v < s.min || v > s.max {
		return outOfRangeError(k, v)
	}
	return nil
}

// display assumes v already passed inRange.
func (k Kind) display(v uint64) string {
	if sel := k.spec().selection; sel != nil && v < uint64(len(sel)) {
		return sel[v]
	}
	return strconv.FormatUint(v, 10)
}
