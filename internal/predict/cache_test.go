package predict

import (
	"testing"
	"time"

	"github.com/yourusername/matchcast/internal/models"
)

func cachedResult(outcome models.Outcome) *models.PredictionResult {
	return &models.PredictionResult{
		HomeWinPct: 50.0,
		DrawPct:    30.0,
		AwayWinPct: 20.0,
		Outcome:    outcome,
		Confidence: 50.0,
		Backend:    "heuristic",
	}
}

func TestResultCacheGetSet(t *testing.T) {
	rc := NewResultCache(time.Minute, time.Minute, 10)
	key := CacheKey{HomeTeam: "Arsenal", AwayTeam: "Chelsea", Backend: "heuristic"}

	if got := rc.Get(key); got != nil {
		t.Fatalf("expected miss on empty cache, got %+v", got)
	}

	want := cachedResult(models.OutcomeHomeWin)
	rc.Set(key, want)

	got := rc.Get(key)
	if got != want {
		t.Fatalf("expected cached result %+v, got %+v", want, got)
	}

	hits, misses, ratio := rc.Stats()
	if hits != 1 || misses != 1 || ratio != 0.5 {
		t.Errorf("stats = (%d, %d, %v), want (1, 1, 0.5)", hits, misses, ratio)
	}
}

func TestResultCacheClear(t *testing.T) {
	rc := NewResultCache(time.Minute, time.Minute, 10)
	key := CacheKey{HomeTeam: "Arsenal", AwayTeam: "Chelsea", Backend: "heuristic"}
	rc.Set(key, cachedResult(models.OutcomeHomeWin))

	rc.Clear()

	if rc.ItemCount() != 0 {
		t.Errorf("item count after clear = %d, want 0", rc.ItemCount())
	}
	if got := rc.Get(key); got != nil {
		t.Errorf("expected miss after clear, got %+v", got)
	}
}

func TestResultCacheSweepsExpiredAtCapacity(t *testing.T) {
	// Long janitor interval so only the capacity check can remove entries.
	rc := NewResultCache(10*time.Millisecond, time.Hour, 1)

	rc.Set(CacheKey{HomeTeam: "Arsenal", AwayTeam: "Chelsea", Backend: "heuristic"}, cachedResult(models.OutcomeHomeWin))
	time.Sleep(25 * time.Millisecond)
	rc.Set(CacheKey{HomeTeam: "Leeds", AwayTeam: "Fulham", Backend: "heuristic"}, cachedResult(models.OutcomeDraw))

	if rc.ItemCount() != 1 {
		t.Errorf("item count = %d, want 1 after expired entry swept", rc.ItemCount())
	}
}

func TestResultCacheUnboundedSkipsSweep(t *testing.T) {
	rc := NewResultCache(10*time.Millisecond, time.Hour, 0)

	rc.Set(CacheKey{HomeTeam: "Arsenal", AwayTeam: "Chelsea", Backend: "heuristic"}, cachedResult(models.OutcomeHomeWin))
	time.Sleep(25 * time.Millisecond)
	rc.Set(CacheKey{HomeTeam: "Leeds", AwayTeam: "Fulham", Backend: "heuristic"}, cachedResult(models.OutcomeDraw))

	// The expired entry stays until the janitor runs; Set must not sweep.
	if rc.ItemCount() != 2 {
		t.Errorf("item count = %d, want 2 with no capacity sweep", rc.ItemCount())
	}
}
