package daemonruntime

import (
	"strings"

	"github.com/quailyquaily/cronsay/internal/records"
)

// RecordStatus filters history listings.
type RecordStatus string

const (
	RecordAny    RecordStatus = ""
	RecordOK     RecordStatus = "ok"
	RecordFailed RecordStatus = "failed"
)

type DescribeRequest struct {
	Expression string `json:"expression"`
}

func ParseRecordStatus(raw string) (RecordStatus, bool) {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "":
		return RecordAny, true
	case string(RecordOK):
		return RecordOK, true
	case string(RecordFailed):
		return RecordFailed, true
	default:
		return "", false
	}
}

func (s RecordStatus) matches(rec records.Record) bool {
	switch s {
	case RecordOK:
		return !rec.Failed()
	case RecordFailed:
		return rec.Failed()
	default:
		return true
	}
}
