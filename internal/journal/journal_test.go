package journal

import (
	"context"
	"testing"
	"time"
)

func openJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open()
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() {
		_ = j.Close()
	})
	return j
}

func TestRecordAndRecent(t *testing.T) {
	j := openJournal(t)
	ctx := context.Background()

	entries := []Entry{
		{At: time.Unix(0, 0), Kind: KindAdd, Position: "QB", Index: -1},
		{At: time.Unix(1, 0), Kind: KindEdit, Position: "QB", Index: 0, Field: "name", Value: "Vick"},
		{At: time.Unix(2, 0), Kind: KindView, Index: -1, Value: "totals"},
	}
	for _, e := range entries {
		if _, err := j.Record(ctx, e); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	recent, err := j.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
	if recent[0].Kind != KindView || recent[1].Kind != KindEdit {
		t.Fatalf("expected newest first, got %+v", recent)
	}
	if recent[1].Value != "Vick" || recent[1].Index != 0 || !recent[1].At.Equal(time.Unix(1, 0)) {
		t.Fatalf("unexpected edit entry: %+v", recent[1])
	}
}

func TestCountByKind(t *testing.T) {
	j := openJournal(t)
	ctx := context.Background()
	for _, kind := range []string{KindAdd, KindAdd, KindRemove, KindView} {
		if _, err := j.Record(ctx, Entry{Kind: kind, Index: -1}); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	counts, err := j.CountByKind(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts[KindAdd] != 2 || counts[KindRemove] != 1 || counts[KindView] != 1 || counts[KindEdit] != 0 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestDescribe(t *testing.T) {
	e := Entry{Kind: KindRemove, Position: "WR", Index: 1, Err: "player index out of range"}
	if got := e.Describe(); got != "removed WR #2 (failed: player index out of range)" {
		t.Fatalf("unexpected description: %q", got)
	}
}
