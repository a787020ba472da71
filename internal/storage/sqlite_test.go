package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenSession()
	if err != nil {
		t.Fatalf("OpenSession() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.RecordRun(RunRecord{MazeID: "classic", Score: score, Ticks: 10}); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}
	if _, err := store.RecordRun(RunRecord{MazeID: "compact", Score: 500}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	runs, err := store.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	want := []int{200, 100, 50}
	for i, r := range runs {
		if r.Score != want[i] {
			t.Errorf("run %d score = %d, want %d", i, r.Score, want[i])
		}
		if r.MazeID != "classic" {
			t.Errorf("run %d maze = %q", i, r.MazeID)
		}
		if r.Reason != ReasonContact {
			t.Errorf("run %d reason = %q, want default %q", i, r.Reason, ReasonContact)
		}
	}

	limited, err := store.TopRuns("classic", 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(limited))
	}
}

func TestRecordRunFields(t *testing.T) {
	store := openTestStore(t)
	ended := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	id, err := store.RecordRun(RunRecord{
		MazeID:  "turbo",
		Score:   42,
		Ticks:   1234,
		Seed:    -7,
		Reason:  ReasonTickLimit,
		EndedAt: ended,
	})
	if err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("run id %q is not a uuid: %v", id, err)
	}

	runs, err := store.TopRuns("turbo", 1)
	if err != nil || len(runs) != 1 {
		t.Fatalf("TopRuns() = %v, %v", runs, err)
	}
	r := runs[0]
	if r.ID != id || r.Ticks != 1234 || r.Seed != -7 || r.Reason != ReasonTickLimit {
		t.Errorf("stored run = %+v", r)
	}
	if !r.EndedAt.Equal(ended) {
		t.Errorf("EndedAt = %v, want %v", r.EndedAt, ended)
	}
}

func TestRecordRunRequiresMaze(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.RecordRun(RunRecord{Score: 1}); err == nil {
		t.Error("RecordRun without maze id succeeded")
	}
}

func TestBestScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("classic")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty journal, got %d", best)
	}

	store.RecordRun(RunRecord{MazeID: "classic", Score: 10, Ticks: 100})
	store.RecordRun(RunRecord{MazeID: "classic", Score: 30, Ticks: 300})

	best, err = store.BestScore("classic")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 30 {
		t.Errorf("BestScore() = %d, want 30", best)
	}

	stats, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestScore != 30 || stats.AvgScore != 20 || stats.TotalTicks != 400 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	a.RecordRun(RunRecord{MazeID: "classic", Score: 5})

	runs, err := b.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("new session sees %d runs from another session", len(runs))
	}
}
