package store

import (
	"context"
	"testing"

	"github.com/thanvish21/systemx/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).ProfileRepo()

	p := profile.Defaults()
	p.Codename = "AIR_ONE_2025"
	p.Level = profile.LevelStrong
	p.IsCollegeStudent = false

	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("load returned nil after save")
	}
	if *got != p {
		t.Errorf("round trip mismatch: got %+v, want %+v", *got, p)
	}
}

func TestLoadAbsent(t *testing.T) {
	repo := openTestStore(t).ProfileRepo()
	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for absent profile, got %+v", got)
	}
}

func TestSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).ProfileRepo()

	first := profile.Defaults()
	first.Codename = "A"
	second := profile.Defaults()
	second.Codename = "B"

	if err := repo.Save(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Codename != "B" {
		t.Errorf("got %+v, want codename B", got)
	}
}

func TestCorruptRecordTreatedAsAbsentAndCleared(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.DB().Exec(
		`INSERT INTO profiles (slot, data) VALUES (?, ?)`, ProfileSlot, "{not json")
	if err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	got, err := s.ProfileRepo().Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Errorf("corrupt record surfaced as profile: %+v", got)
	}

	// The corrupt row must have been removed.
	var n int
	if err := s.DB().QueryRow(`SELECT COUNT(*) FROM profiles`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("corrupt row still present (%d rows)", n)
	}
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	repo := openTestStore(t).ProfileRepo()
	if err := repo.Delete(context.Background()); err != nil {
		t.Errorf("delete on empty store: %v", err)
	}
}

func TestRequestLogAppendAndRecent(t *testing.T) {
	ctx := context.Background()
	log := openTestStore(t).RequestLog()

	recs := []RequestRecord{
		{SessionID: "s1", Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "mentor", InputTokens: 120, OutputTokens: 80, LatencyMs: 450, Success: true},
		{SessionID: "s1", Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "mentor", Success: false, ErrorMessage: "unavailable"},
	}
	for _, rec := range recs {
		if err := log.Append(ctx, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := log.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	// Newest first.
	if got[0].Success || got[0].ErrorMessage != "unavailable" {
		t.Errorf("newest record = %+v, want the failed one", got[0])
	}
	if !got[1].Success || got[1].InputTokens != 120 {
		t.Errorf("oldest record = %+v", got[1])
	}
}
