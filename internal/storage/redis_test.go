package storage

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

// openTestRedis connects to the server named by ASTEROIDMANIA_REDIS_ADDR.
// Each test gets its own key prefix so runs do not interfere.
func openTestRedis(t *testing.T) *RedisStore {
	t.Helper()
	addr := os.Getenv("ASTEROIDMANIA_REDIS_ADDR")
	if addr == "" {
		t.Skip("ASTEROIDMANIA_REDIS_ADDR not set")
	}

	prefix := "asteroidmania-test:" + uuid.NewString() + ":"
	store, err := OpenRedis(addr, prefix)
	if err != nil {
		t.Fatalf("OpenRedis() failed: %v", err)
	}
	t.Cleanup(func() {
		store.ClearScores()
		store.Close()
	})
	return store
}

func TestRedisOpenUnreachable(t *testing.T) {
	_, err := OpenRedis("127.0.0.1:1", "")
	if err == nil {
		t.Fatal("OpenRedis() should fail without a server")
	}
	if !strings.Contains(err.Error(), "storage:") {
		t.Errorf("error should carry the package prefix, got %v", err)
	}
}

func TestRedisSaveAndRetrieve(t *testing.T) {
	store := openTestRedis(t)

	played := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	for _, e := range []ScoreEntry{
		{Player: "ada", SessionID: "s1", Score: 100, CreatedAt: played},
		{Player: "bob", SessionID: "s2", Score: 50, CreatedAt: played},
		{Player: "ada", SessionID: "s3", Score: 200, CreatedAt: played},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[0].SessionID != "s3" || scores[1].Score != 100 {
		t.Errorf("unexpected order: %+v", scores)
	}
	if !scores[0].CreatedAt.Equal(played) {
		t.Errorf("CreatedAt = %v, expected %v", scores[0].CreatedAt, played)
	}

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 200 {
		t.Errorf("Expected high score 200, got %d", high)
	}
}

func TestRedisEmptyLeaderboard(t *testing.T) {
	store := openTestRedis(t)

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores, got %d", len(scores))
	}

	high, err := store.HighScore()
	if err != nil || high != 0 {
		t.Errorf("HighScore() = %d, %v; expected 0, nil", high, err)
	}
}

func TestRankMemberOrder(t *testing.T) {
	for _, pair := range [][2]int64{{1, 2}, {9, 10}, {99, 100}, {1, 1 << 40}} {
		lo, hi := rankMember(pair[0]), rankMember(pair[1])
		if len(lo) != len(hi) {
			t.Errorf("members for %d and %d differ in width: %q %q", pair[0], pair[1], lo, hi)
		}
		if lo <= hi {
			t.Errorf("member for %d should sort after %d: %q <= %q", pair[0], pair[1], lo, hi)
		}
	}

	for _, id := range []int64{1, 10, 123456} {
		got, err := memberID(rankMember(id))
		if err != nil || got != id {
			t.Errorf("memberID(rankMember(%d)) = %d, %v", id, got, err)
		}
	}
	if _, err := memberID("not-a-number"); err == nil {
		t.Error("memberID() should reject non-numeric members")
	}
}

func TestRedisTiesListOldestFirst(t *testing.T) {
	store := openTestRedis(t)

	var ids []int64
	for range 11 {
		id, err := store.SaveScore(ScoreEntry{Player: "ada", Score: 5})
		if err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
		ids = append(ids, id)
	}

	scores, err := store.TopScores(len(ids))
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != len(ids) {
		t.Fatalf("Expected %d scores, got %d", len(ids), len(scores))
	}
	for i, s := range scores {
		if s.ID != ids[i] {
			t.Errorf("position %d: id %d, expected %d", i, s.ID, ids[i])
		}
	}
}
