package store

import (
	"context"
	"strings"
	"testing"

	"kakeibo/internal/slot/memory"
)

func TestCSVEmptyStoreIsHeaderOnly(t *testing.T) {
	s := newTestStore(t)

	got := s.CSV()
	if got != CSVHeader {
		t.Fatalf("empty export = %q, want bare header", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Fatal("export must not end with a newline")
	}
}

func TestCSVChronologicalOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Inserted newest-date first; export must still be date-ascending
	s.Add(ctx, "2024-03-01", "Food", "1000", "lunch")
	s.Add(ctx, "2024-02-15", "Transport", "500", "")

	want := CSVHeader + "\n" +
		"2024-02-15,Transport,500,\n" +
		"2024-03-01,Food,1000,lunch"
	if got := s.CSV(); got != want {
		t.Fatalf("export = %q, want %q", got, want)
	}
}

func TestCSVDoesNotReorderLiveRecords(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, "2024-03-01", "Food", "1000", "")
	s.Add(ctx, "2024-02-15", "Transport", "500", "")
	before := s.Records()

	s.CSV()

	after := s.Records()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("export reordered the live collection")
		}
	}
}

func TestCSVMemoCommaSubstitution(t *testing.T) {
	s := newTestStore(t)

	s.Add(context.Background(), "2024-01-01", "Food", "100", "a,b")

	got := s.CSV()
	if !strings.Contains(got, "a、b") {
		t.Fatalf("memo comma not substituted: %q", got)
	}
	lastRow := got[strings.LastIndexByte(got, '\n')+1:]
	if strings.Count(lastRow, ",") != 3 {
		t.Fatalf("row has broken column structure: %q", lastRow)
	}
}

func TestCSVStableForEqualDates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, "2024-01-01", "Food", "1", "first")
	s.Add(ctx, "2024-01-01", "Food", "2", "second")

	got := s.CSV()
	// Newest-first collection, stable sort: "second" row before "first"
	if strings.Index(got, "second") > strings.Index(got, "first") {
		t.Fatalf("equal-date rows lost their stable order: %q", got)
	}
}

func TestCSVUnparseableDateSortsFirst(t *testing.T) {
	s := New(memory.New(), nil)
	ctx := context.Background()
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	s.Add(ctx, "2024-01-01", "Food", "100", "")
	s.Add(ctx, "garbage", "Food", "50", "")

	lines := strings.Split(s.CSV(), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "garbage,") {
		t.Fatalf("unparseable date should sort first, got %q", lines[1])
	}
}
