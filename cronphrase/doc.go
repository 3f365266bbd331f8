// Package cronphrase turns a 6 or 7 field cron expression
// (second minute hour day-of-month month day-of-week [year]) into an
// English sentence describing when it fires.
//
// Each field is split on commas into sections. A section is one of
//
//	*          every value
//	5          a single value
//	1-5        a range; 22-2 wraps past the field maximum
//	5/15       every 15th value from 5 up to the field maximum
//	1-30/5     every 5th value inside a range
//	*/15       every 15th value
//
// Month and day-of-week accept English names ("jan", "Monday", "tues").
// Day-of-week is 1-based with Sunday=1.
//
// The package only describes; it does not compute fire times.
package cronphrase
