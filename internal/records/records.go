package records

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quailyquaily/cronsay/cronphrase"
)

// Record is one described expression. Exactly one of Description and Error
// is set.
type Record struct {
	ID          string    `json:"id" yaml:"id"`
	Expression  string    `json:"expression" yaml:"expression"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Error       string    `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorKind   string    `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

func (r Record) Failed() bool { return strings.TrimSpace(r.Error) != "" }

// Describe runs the analyzer on expr and captures the outcome. Analyzer
// failures are kept in the record, never returned.
func Describe(expr string, now time.Time) Record {
	if now.IsZero() {
		now = time.Now()
	}
	rec := Record{
		ID:         uuid.NewString(),
		Expression: strings.Join(strings.Fields(expr), " "),
		CreatedAt:  now.UTC(),
	}
	sentence, err := cronphrase.Describe(expr)
	if err != nil {
		rec.Error = err.Error()
		var aerr *cronphrase.Error
		if errors.As(err, &aerr) {
			rec.ErrorKind = aerr.Kind.String()
		}
		return rec
	}
	rec.Description = sentence
	return rec
}

func AnyFailed(recs []Record) bool {
	for _, r := range recs {
		if r.Failed() {
			return true
		}
	}
	return false
}
