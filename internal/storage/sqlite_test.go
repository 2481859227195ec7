package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

// openTestStore opens a fresh database in a temporary directory.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func saveRound(t *testing.T, store *Store, r Round) string {
	t.Helper()
	id, err := store.SaveRound(r)
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id := saveRound(t, store, Round{
		GameID:          "breakout",
		Outcome:         OutcomeWon,
		Score:           360,
		LivesLeft:       2,
		BlocksDestroyed: 36,
		BallsSpawned:    4,
		Duration:        95 * time.Second,
		Seed:            42,
	})

	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRound() returned non-UUID id %q: %v", id, err)
	}

	got, err := store.RoundByID(id)
	if err != nil {
		t.Fatalf("RoundByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RoundByID() returned nil for a saved round")
	}

	if got.GameID != "breakout" || got.Outcome != OutcomeWon || got.Score != 360 ||
		got.LivesLeft != 2 || got.BlocksDestroyed != 36 || got.BallsSpawned != 4 ||
		got.Duration != 95*time.Second || got.Seed != 42 {
		t.Errorf("RoundByID() = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}

	missing, err := store.RoundByID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("RoundByID(unknown) = %+v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreSaveRoundKeepsID(t *testing.T) {
	store := openTestStore(t)

	want := uuid.NewString()
	if got := saveRound(t, store, Round{ID: want, GameID: "breakout", Outcome: OutcomeLost}); got != want {
		t.Errorf("SaveRound() id = %s, expected %s", got, want)
	}

	if _, err := store.SaveRound(Round{ID: want, GameID: "breakout", Outcome: OutcomeLost}); err == nil {
		t.Error("saving a duplicate id should fail")
	}
	if _, err := store.SaveRound(Round{ID: "not-a-uuid", GameID: "breakout"}); err == nil {
		t.Error("saving a malformed id should fail")
	}
}

func TestStoreTopRounds(t *testing.T) {
	store := openTestStore(t)

	saveRound(t, store, Round{GameID: "breakout", Outcome: OutcomeLost, Score: 100, Duration: time.Minute})
	saveRound(t, store, Round{GameID: "breakout", Outcome: OutcomeWon, Score: 360, Duration: 3 * time.Minute})
	saveRound(t, store, Round{GameID: "breakout", Outcome: OutcomeWon, Score: 360, Duration: 2 * time.Minute})
	saveRound(t, store, Round{GameID: "breakout", Outcome: OutcomeLost, Score: 50})
	saveRound(t, store, Round{GameID: "breakout_classic", Outcome: OutcomeLost, Score: 500})

	rounds, err := store.TopRounds("breakout", 3)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds with limit, got %d", len(rounds))
	}

	// Ties on score go to the faster round.
	if rounds[0].Score != 360 || rounds[0].Duration != 2*time.Minute {
		t.Errorf("first = %+v", rounds[0])
	}
	if rounds[1].Score != 360 || rounds[1].Duration != 3*time.Minute {
		t.Errorf("second = %+v", rounds[1])
	}
	if rounds[2].Score != 100 {
		t.Errorf("third = %+v", rounds[2])
	}

	classic, err := store.TopRounds("breakout_classic", 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(classic) != 1 {
		t.Errorf("Expected 1 classic round, got %d", len(classic))
	}
}

func TestStoreRecentRounds(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		saveRound(t, store, Round{GameID: "breakout", Outcome: OutcomeLost, Score: i * 10})
	}

	rounds, err := store.RecentRounds("breakout", 3)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(rounds))
	}
	// Same-second inserts fall back to insertion order.
	if rounds[0].Score != 40 || rounds[1].Score != 30 || rounds[2].Score != 20 {
		t.Errorf("Rounds not newest first: %d, %d, %d", rounds[0].Score, rounds[1].Score, rounds[2].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("breakout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	saveRound(t, store, Round{GameID: "breakout", Outcome: OutcomeLost, Score: 100})
	saveRound(t, store, Round{GameID: "breakout", Outcome: OutcomeLost, Score: 300})
	saveRound(t, store, Round{GameID: "breakout", Outcome: OutcomeLost, Score: 200})

	high, err = store.HighScore("breakout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRounds(t *testing.T) {
	store := openTestStore(t)

	saveRound(t, store, Round{GameID: "breakout", Outcome: OutcomeLost, Score: 100})
	saveRound(t, store, Round{GameID: "breakout_classic", Outcome: OutcomeLost, Score: 300})

	if err := store.ClearRounds("breakout"); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	rounds, _ := store.TopRounds("breakout", 10)
	if len(rounds) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(rounds))
	}

	classic, _ := store.TopRounds("breakout_classic", 10)
	if len(classic) != 1 {
		t.Errorf("Classic rounds should not be affected by clearing breakout")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("breakout")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.Rounds != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	saveRound(t, store, Round{GameID: "breakout", Outcome: OutcomeWon, Score: 360})
	saveRound(t, store, Round{GameID: "breakout", Outcome: OutcomeLost, Score: 120})
	saveRound(t, store, Round{GameID: "breakout_classic", Outcome: OutcomeLost, Score: 30})

	stats, err := store.GetGameStats("breakout")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Rounds != 2 || stats.Wins != 1 || stats.HighScore != 360 || stats.TotalScore != 480 || stats.AvgScore != 240 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["breakout_classic"].Rounds != 1 || all["breakout_classic"].Wins != 0 {
		t.Errorf("classic stats = %+v", all["breakout_classic"])
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
