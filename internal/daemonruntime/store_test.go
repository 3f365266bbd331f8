package daemonruntime

import (
	"fmt"
	"testing"
	"time"

	"github.com/quailyquaily/cronsay/internal/records"
)

func TestMemoryStoreAddListGet(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(100)
	base := time.Now().UTC().Add(-1 * time.Minute)
	s.Add(records.Record{
		ID:          "r1",
		Expression:  "0 0 12 * * *",
		Description: "At 12:00:00.",
		CreatedAt:   base,
	})
	s.Add(records.Record{
		ID:         "r2",
		Expression: "0 0 12 * *",
		Error:      "cron expression must have 6 or 7 fields, got 5",
		CreatedAt:  base.Add(time.Second),
	})
	s.Add(records.Record{ID: "  "})

	items := s.List(RecordAny, 20)
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].ID != "r2" {
		t.Fatalf("items[0].ID = %q, want newest first", items[0].ID)
	}

	ok := s.List(RecordOK, 20)
	if len(ok) != 1 || ok[0].ID != "r1" {
		t.Fatalf("ok = %#v", ok)
	}
	failed := s.List(RecordFailed, 20)
	if len(failed) != 1 || failed[0].ID != "r2" {
		t.Fatalf("failed = %#v", failed)
	}

	item, found := s.Get(" r1 ")
	if !found || item == nil {
		t.Fatalf("Get() not found")
	}
	item.Description = "mutated"
	again, _ := s.Get("r1")
	if again.Description != "At 12:00:00." {
		t.Fatalf("Get() returned shared record")
	}
	if _, found := s.Get("missing"); found {
		t.Fatalf("Get(missing) found")
	}
}

func TestMemoryStorePrunesOldest(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(3)
	base := time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		s.Add(records.Record{
			ID:        fmt.Sprintf("r%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	for _, id := range []string{"r0", "r1"} {
		if _, ok := s.Get(id); ok {
			t.Fatalf("%s should have been pruned", id)
		}
	}
	if _, ok := s.Get("r4"); !ok {
		t.Fatalf("newest record pruned")
	}
}

func TestMemoryStoreListLimit(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(500)
	base := time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 250; i++ {
		s.Add(records.Record{ID: fmt.Sprintf("r%03d", i), CreatedAt: base.Add(time.Duration(i) * time.Second)})
	}
	if got := len(s.List(RecordAny, 0)); got != 20 {
		t.Fatalf("default limit = %d, want 20", got)
	}
	if got := len(s.List(RecordAny, 1000)); got != 200 {
		t.Fatalf("capped limit = %d, want 200", got)
	}
}

func TestParseRecordStatus(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]RecordStatus{"": RecordAny, "OK": RecordOK, " failed ": RecordFailed} {
		got, ok := ParseRecordStatus(raw)
		if !ok || got != want {
			t.Fatalf("ParseRecordStatus(%q) = %q, %v", raw, got, ok)
		}
	}
	if _, ok := ParseRecordStatus("done"); ok {
		t.Fatalf("ParseRecordStatus(done) accepted")
	}
}
